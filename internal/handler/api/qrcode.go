package api

import (
	"net/http"

	"qr-loyalty-service/internal/domain/scan"
	reqdto "qr-loyalty-service/internal/handler/dto/request"
	resdto "qr-loyalty-service/internal/handler/dto/response"
	"qr-loyalty-service/internal/handler/httperr"
	"qr-loyalty-service/internal/handler/middleware"
	"qr-loyalty-service/internal/pkg/errs"
	"qr-loyalty-service/internal/usecase/commands"
	"qr-loyalty-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = errs.New("unauthorized")

type QrCodeHandler struct {
	cmds commands.QrCodeCommands
	q    queries.QrCodeQueries
}

func NewQrCodeHandler(cmds commands.QrCodeCommands, q queries.QrCodeQueries) *QrCodeHandler {
	return &QrCodeHandler{cmds: cmds, q: q}
}

// @Summary Create QR code
// @Description Issue a new signed QR code
// @Tags qrcodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQrCodeRequest true "Create QR code request"
// @Success 201 {object} resdto.QrCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /qrcodes [post]
func (h *QrCodeHandler) Create(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.CreateQrCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	qr, err := h.cmds.CreateQrCode(c.Request.Context(), req.ToCommand(businessID))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQrCodeRecord(qr))
}

// @Summary Get QR code
// @Description Look up a QR code by its unique ID
// @Tags qrcodes
// @Produce json
// @Security BearerAuth
// @Param uniqueId path string true "QR unique ID"
// @Success 200 {object} resdto.QrCodeResponse
// @Failure 422 {object} httperr.Response
// @Router /qrcodes/{uniqueId} [get]
func (h *QrCodeHandler) Get(c *gin.Context) {
	view, err := h.q.GetByUniqueID(c.Request.Context(), c.Param("uniqueId"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQrCodeView(view))
}

// @Summary Update QR code status
// @Description Transition a QR code between ACTIVE, EXPIRED, and REVOKED
// @Tags qrcodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uniqueId path string true "QR unique ID"
// @Param request body reqdto.UpdateQrCodeStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /qrcodes/{uniqueId}/status [patch]
func (h *QrCodeHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateQrCodeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("uniqueId"), scan.Status(req.Status))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update QR code expiry
// @Description Move a QR code's expiry date
// @Tags qrcodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uniqueId path string true "QR unique ID"
// @Param request body reqdto.UpdateQrCodeExpiryRequest true "New expiry"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /qrcodes/{uniqueId}/expiry [patch]
func (h *QrCodeHandler) UpdateExpiry(c *gin.Context) {
	var req reqdto.UpdateQrCodeExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	err := h.cmds.UpdateExpiry(c.Request.Context(), c.Param("uniqueId"), req.ExpiryDate)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
