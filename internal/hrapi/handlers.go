package hrapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// resourceHandler serves the generic list contract for one collection.
type resourceHandler[T models.Record] struct {
	col *Collection[T]
}

// registerResource mounts list, statistics, export and per-record routes for
// col under rg. list overrides the default list handler when non-nil.
func registerResource[T models.Record](rg *gin.RouterGroup, col *Collection[T], list gin.HandlerFunc) {
	h := &resourceHandler[T]{col: col}
	if list == nil {
		list = h.List
	}
	base := "/" + string(col.Resource())
	rg.GET(base, list)
	rg.POST(base, h.Create)
	rg.GET(base+"/"+constants.PathStatistics, h.Statistics)
	rg.GET(base+"/"+constants.PathExport, h.Export)
	rg.GET(base+"/:id", h.Get)
	rg.PATCH(base+"/:id", h.Patch)
	rg.POST(base+"/:id/"+constants.PathApprove, h.Approve)
	rg.DELETE(base+"/:id", h.Delete)
}

// List handles GET /api/<resource>
func (h *resourceHandler[T]) List(c *gin.Context) {
	fs := models.FilterStateFromQuery(c.Request.URL.Query())
	c.JSON(http.StatusOK, h.col.List(fs))
}

// Statistics handles GET /api/<resource>/statistics
func (h *resourceHandler[T]) Statistics(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseStatistics, func() (interface{}, error) {
		return h.col.Statistics(), nil
	})
}

// Get handles GET /api/<resource>/:id
func (h *resourceHandler[T]) Get(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseRecord, func() (interface{}, error) {
		return h.col.Get(c.Param("id"))
	})
}

// Create handles POST /api/<resource>
func (h *resourceHandler[T]) Create(c *gin.Context) {
	var rec T
	if !BindJSON(c, &rec) {
		return
	}
	created := h.col.Insert(rec)
	c.JSON(http.StatusCreated, gin.H{
		constants.FieldMessage:   "Record created successfully",
		constants.ResponseRecord: created[0],
	})
}

type patchRequest struct {
	Status string `json:"status"`
}

// Patch handles PATCH /api/<resource>/:id. Only status is mutable.
func (h *resourceHandler[T]) Patch(c *gin.Context) {
	var req patchRequest
	if !BindJSON(c, &req) {
		return
	}
	HandleMutationEnvelope(c, "Record updated successfully", func() (interface{}, error) {
		return h.col.UpdateStatus(c.Param("id"), req.Status)
	})
}

// Approve handles POST /api/<resource>/:id/approve
func (h *resourceHandler[T]) Approve(c *gin.Context) {
	HandleMutationEnvelope(c, "Record approved successfully", func() (interface{}, error) {
		return h.col.Approve(c.Param("id"))
	})
}

// Delete handles DELETE /api/<resource>/:id
func (h *resourceHandler[T]) Delete(c *gin.Context) {
	HandleDeleteEnvelope(c, "Record deleted successfully", func() error {
		return h.col.Delete(c.Param("id"))
	})
}

// Export handles GET /api/<resource>/export. Pagination parameters are
// ignored: the workbook holds every record matching the filters.
func (h *resourceHandler[T]) Export(c *gin.Context) {
	fs := models.FilterStateFromQuery(c.Request.URL.Query())
	data, err := h.workbook(h.col.Export(fs))
	if err != nil {
		RespondAppError(c, apperrors.NewInternalError("failed to build export", err))
		return
	}
	name := fmt.Sprintf("%s-%s%s", h.col.Resource(), time.Now().Format("20060102"), constants.ExportFileExtension)
	c.Header(constants.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, data)
}

func (h *resourceHandler[T]) workbook(records []T) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := string(h.col.Resource())
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}
	header := make([]interface{}, len(h.col.Columns))
	for i, col := range h.col.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}
	for i, r := range records {
		row, err := h.col.Row(r)
		if err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ListLeaves handles GET /api/leaves. With from and to it returns the
// approved leaves overlapping that window; otherwise the plain list.
func (s *Server) ListLeaves(c *gin.Context) {
	q := c.Request.URL.Query()
	fromRaw, toRaw := q.Get(constants.ParamFrom), q.Get(constants.ParamTo)
	if fromRaw == "" && toRaw == "" {
		c.JSON(http.StatusOK, s.store.Leaves.List(models.FilterStateFromQuery(q)))
		return
	}
	from, err := models.ParseDate(fromRaw)
	if err != nil {
		RespondAppError(c, apperrors.NewValidationError(constants.ParamFrom, "must be a YYYY-MM-DD date"))
		return
	}
	to, err := models.ParseDate(toRaw)
	if err != nil {
		RespondAppError(c, apperrors.NewValidationError(constants.ParamTo, "must be a YYYY-MM-DD date"))
		return
	}
	if to.Before(from.Time) {
		RespondAppError(c, apperrors.NewValidationError(constants.ParamTo, "must not be before from"))
		return
	}
	leaves := s.store.LeavesBetween(from, to)
	c.JSON(http.StatusOK, models.ListResponse[models.Leave]{Data: leaves, Total: len(leaves)})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSON(c, &req) {
		return
	}
	user, ok := s.store.Users.Authenticate(req.Email, req.Password)
	if !ok {
		RespondAppError(c, apperrors.NewUnauthorizedError("Invalid email or password"))
		return
	}
	token, err := s.auth.GenerateToken(user)
	if err != nil {
		RespondAppError(c, apperrors.NewInternalError("failed to issue token", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.ResponseToken:  token,
		constants.ContextKeyUser: user,
	})
}

// ValidateSalary handles POST /api/salary-structures/validate and returns
// the computed breakdown, or every offending field.
func (s *Server) ValidateSalary(c *gin.Context) {
	var form models.SalaryStructure
	if !BindJSON(c, &form) {
		return
	}
	HandleGetEnvelope(c, "breakdown", func() (interface{}, error) {
		return form.Breakdown()
	})
}

// Health handles GET /api/health
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
