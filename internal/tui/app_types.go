package tui

type mode int

const (
	modeBrowse mode = iota
	modeProjectForm
	modeConfirmDelete
	modeContactForm
)

type projectField int

const (
	fieldTitle projectField = iota
	fieldDesc
	fieldTags
	projectFieldCount
)

type contactField int

const (
	fieldName contactField = iota
	fieldEmail
	fieldMessage
	contactFieldCount
)

type flashDoneMsg struct{ seq int }

type urlOpenDoneMsg struct {
	url string
	err error
}
