package domain

// Action names used for access checks, routes and templates.
const (
	ActionList                    = "list"
	ActionCreate                  = "create"
	ActionEdit                    = "edit"
	ActionShow                    = "show"
	ActionDelete                  = "delete"
	ActionBatch                   = "batch"
	ActionHistory                 = "history"
	ActionHistoryViewRevision     = "historyViewRevision"
	ActionHistoryCompareRevisions = "historyCompareRevisions"
	ActionExport                  = "export"
	ActionACL                     = "acl"
)

// Template keys resolved through the resource's template table.
const (
	TemplateList              = "list"
	TemplateEdit              = "edit"
	TemplatePreview           = "preview"
	TemplateShow              = "show"
	TemplateShowCompare       = "show_compare"
	TemplateDelete            = "delete"
	TemplateHistory           = "history"
	TemplateBatchConfirmation = "batch_confirmation"
	TemplateSelectSubclass    = "select_subclass"
	TemplateACL               = "acl"
)

// CSRF intentions.
const (
	IntentionDelete = "delete"
	IntentionBatch  = "batch"
	IntentionACL    = "acl"
)
