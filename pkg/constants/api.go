package constants

import "time"

// HTTP and API constants
const (
	// Content types
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// HTTP Headers
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAuthorization      = "Authorization"
	HeaderXRequestID         = "X-Request-ID"

	// Auth
	BearerPrefix = "Bearer "

	// Response Keys
	ResponseError      = "error"
	ResponseData       = "data"
	ResponseTotal      = "total"
	ResponseStatistics = "statistics"
	ResponseRecord     = "record"
	ResponseToken      = "token"
	FieldMessage       = "message"
	FieldCode          = "code"
)

// API paths. Every list resource lives under APIPrefix.
const (
	APIPrefix      = "/api"
	PathStatistics = "statistics"
	PathExport     = "export"
	PathApprove    = "approve"
	PathLogin      = "/api/auth/login"
	PathLeaves     = "/api/leaves"
	PathHealth     = "/api/health"
	PathSalary     = "/api/salary-structures/validate"
)

// Query parameter constants
const (
	ParamPage    = "page"
	ParamPerPage = "per_page"
	ParamSearch  = "search"
	ParamFrom    = "from"
	ParamTo      = "to"
)

// List defaults
const (
	DefaultPerPage       = 15
	MaxPerPage           = 200
	DefaultHorizonDays   = 30
	DefaultTimeout       = 10 * time.Second
	DefaultUpcomingDays  = 7
	ExportFileExtension  = ".xlsx"
	DefaultRefreshSpec   = "*/5 * * * *"
	DateLayout           = "2006-01-02"
	FilterAll            = "all"
	DefaultStatusField   = "status"
	DefaultFilterMissing = FilterAll
)

// Context Keys
const (
	ContextKeyUser      = "user"
	ContextKeyToken     = "token"
	ContextKeyRequestID = "request_id"
)
