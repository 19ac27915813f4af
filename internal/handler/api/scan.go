package api

import (
	"net/http"

	reqdto "qr-loyalty-service/internal/handler/dto/request"
	resdto "qr-loyalty-service/internal/handler/dto/response"
	"qr-loyalty-service/internal/handler/httperr"
	"qr-loyalty-service/internal/handler/middleware"
	"qr-loyalty-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	cmds commands.ScanCommands
}

func NewScanHandler(cmds commands.ScanCommands) *ScanHandler {
	return &ScanHandler{cmds: cmds}
}

// @Summary Process scan
// @Description Validate a scanned QR payload, apply rate limits, and resolve the code
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessScanRequest true "Scan payload"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /scans [post]
func (h *ScanHandler) Process(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.ProcessScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	customerID, _ := middleware.GetCustomerID(c)
	result, err := h.cmds.ProcessScan(c.Request.Context(), commands.ScanRequest{
		RawPayload: req.Payload,
		BusinessID: businessID,
		CustomerID: customerID,
		IP:         c.ClientIP(),
	})
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScanResult(result))
}
