package split

import "time"

// Operation names reported to a Recorder.
const (
	OpAddPerson     = "add_person"
	OpRenamePerson  = "rename_person"
	OpRemovePerson  = "remove_person"
	OpAddItem       = "add_item"
	OpEditItem      = "edit_item"
	OpRemoveItem    = "remove_item"
	OpSetQuantity   = "set_quantity"
	OpToggle        = "toggle_assignment"
	OpSetTax        = "set_tax"
	OpSetDiscount   = "set_discount"
	OpSetTipAmount  = "set_tip_amount"
	OpSetTipPercent = "set_tip_percentage"
)

// Recorder observes session activity, typically for metrics.
type Recorder interface {
	// Mutation is called once per mutating call with whether it was applied.
	Mutation(op string, applied bool)
	// Allocation is called after each allocation run.
	Allocation(people int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Mutation(string, bool)         {}
func (nopRecorder) Allocation(int, time.Duration) {}
