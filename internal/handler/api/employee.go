package api

import (
	"errors"
	"net/http"

	reqdto "mealpass-api/internal/handler/dto/request"
	resdto "mealpass-api/internal/handler/dto/response"
	"mealpass-api/internal/handler/httperr"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	cmds commands.EmployeeCommands
	q    queries.EmployeeQueries
}

func NewEmployeeHandler(cmds commands.EmployeeCommands, q queries.EmployeeQueries) *EmployeeHandler {
	return &EmployeeHandler{cmds: cmds, q: q}
}

// @Summary List employees
// @Description List all employees ordered by name
// @Tags employees
// @Produce json
// @Success 200 {array} resdto.EmployeeResponse
// @Failure 500 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list employees", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeeList(employees))
}

// @Summary Get employee
// @Description Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} resdto.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	employee, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployee(employee))
}

// @Summary Create employee
// @Description Register a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEmployeeRequest true "Create employee request"
// @Success 201 {object} resdto.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, errs.ErrEmployeeEmailTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create employee failed", nil)
		return
	}
	employee, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load employee", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEmployee(employee))
}

// @Summary Update employee
// @Description Update an employee by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body reqdto.UpdateEmployeeRequest true "Update employee request"
// @Success 200 {object} resdto.EmployeeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateEmployeeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, errs.ErrEmployeeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
		case errors.Is(err, errs.ErrEmployeeEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update employee failed", nil)
		}
		return
	}
	employee, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load employee", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployee(employee))
}

// @Summary Delete employee
// @Description Delete an employee together with their coupons and barcode files
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrEmployeeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete employee failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
