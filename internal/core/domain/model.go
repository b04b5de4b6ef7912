package domain

// CriterionResult holds the verdict of a single criterion.
type CriterionResult struct {
	// Name is the display label of the criterion that produced this result.
	Name string
	// Passed indicates whether the password satisfied the criterion.
	Passed bool
	// Message is a human-readable explanation of the verdict.
	Message string
	// Score is the awarded score, between 0 and Weight.
	Score int
	// Weight is the maximum score the criterion can contribute.
	Weight int
}

// Report holds the outcome of a full password evaluation.
type Report struct {
	// TotalScore is the clamped sum of all criterion scores, between 0 and 100.
	TotalScore int
	// Results holds one entry per criterion, in evaluation order.
	// Empty when the password was empty and no criterion ran.
	Results []CriterionResult
}
