package constants

// Resource is the path segment of a list resource under /api.
type Resource string

const (
	ResourceControlledDocuments Resource = "controlled-documents"
	ResourceTrainingRecords     Resource = "training-records"
	ResourceEmployees           Resource = "employees"
	ResourceAttendance          Resource = "attendance"
	ResourceLeaves              Resource = "leaves"
)

// ListResources returns the resources served by the generic list endpoints.
func ListResources() []Resource {
	return []Resource{
		ResourceControlledDocuments,
		ResourceTrainingRecords,
		ResourceEmployees,
		ResourceAttendance,
	}
}

// IsListResource reports whether r is one of ListResources.
func IsListResource(r Resource) bool {
	for _, lr := range ListResources() {
		if lr == r {
			return true
		}
	}
	return false
}

// ListPath returns /api/<resource>.
func (r Resource) ListPath() string {
	return APIPrefix + "/" + string(r)
}

// RecordPath returns /api/<resource>/<id>.
func (r Resource) RecordPath(id string) string {
	return r.ListPath() + "/" + id
}

// SubPath returns /api/<resource>/<segment>.
func (r Resource) SubPath(segment string) string {
	return r.ListPath() + "/" + segment
}

// ExportFilename is the default download name for an export of r.
func (r Resource) ExportFilename() string {
	return string(r) + ExportFileExtension
}
