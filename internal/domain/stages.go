package domain

// OperationStages are the nine fixed construction stages used as group
// headers in the operations table, in workflow order.
var OperationStages = []string{
	"Design",
	"Temporary Works",
	"Groundwork",
	"Structure",
	"Facade",
	"Interior Finish",
	"Building Services",
	"Occupancy Permit",
	"Handover & Acceptance",
}

// TerminalStage is the last workflow stage. The project-level progress
// estimator anchors completion on the final record in this stage.
const TerminalStage = "Handover & Acceptance"

// UncategorizedStage is the bucket for records whose category is empty or
// does not match one of the nine fixed stages.
const UncategorizedStage = "Uncategorized"

// IsKnownStage reports whether category is one of the nine fixed stages.
func IsKnownStage(category string) bool {
	for _, s := range OperationStages {
		if s == category {
			return true
		}
	}
	return false
}

// QualityPlans are the twelve standard construction plan submissions tracked
// per project, in fixed order. Exactly one quality record exists per plan;
// the names are immutable after seeding.
var QualityPlans = []string{
	"1. Scaffolding Plan",
	"2. Final Excavation Plan",
	"3. Roller Shutter Plan",
	"4. Beam Penetration Plan",
	"5. Ground Floor Elevation Plan",
	"6. Show Unit Plan",
	"7. Exterior Finish Plan",
	"8. Roofing Plan",
	"9. Swimming Pool Plan",
	"10. Waterproofing Plan",
	"11. Handover Inspection Plan",
	"12. Door & Window Opening Plan",
}
