package meds

type MedCmd struct {
	Add    MedAddCmd    `cmd:"" help:"Add a new medication."`
	Edit   MedEditCmd   `cmd:"" help:"Edit an existing medication (slots are recomputed)."`
	List   MedListCmd   `cmd:"" help:"List medications with treatment progress."`
	Delete MedDeleteCmd `cmd:"" help:"Delete a medication (dose history is kept)."`
	Pause  MedPauseCmd  `cmd:"" help:"Pause a medication (removed from today's schedule)."`
	Resume MedResumeCmd `cmd:"" help:"Resume a paused medication."`
}
