package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"

	"github.com/qrforge/qrforge-backend/initializers"
	"github.com/qrforge/qrforge-backend/models"
	"github.com/qrforge/qrforge-backend/qrstyle"
)

const defaultTitle = "Untitled QR Code"

// qrCodeRequest carries the raw form fields plus the optional title and the
// active logo data URL. The embedded fields flatten into the JSON body.
type qrCodeRequest struct {
	qrstyle.RawFields
	Title string `json:"title"`
	Logo  string `json:"logo"`
}

func (r qrCodeRequest) derive() (qrstyle.StyleOptions, *qrstyle.ValidationError) {
	opts, err := qrstyle.Derive(r.RawFields, r.Logo)
	if err != nil {
		return qrstyle.StyleOptions{}, err.(*qrstyle.ValidationError)
	}
	return opts, nil
}

func SaveQRCode(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	var req qrCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "VALIDATION_FAILED"})
		return
	}

	opts, verr := req.derive()
	if verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"code":   "VALIDATION_FAILED",
			"fields": verr.FieldMap(),
		})
		return
	}

	title := req.Title
	if title == "" {
		title = defaultTitle
	}

	optionsJSON, err := json.Marshal(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize options", "code": "PERSISTENCE_FAILED"})
		return
	}

	qr := models.QRCode{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Value:     opts.Content,
		Options:   string(optionsJSON),
		ScanSlug:  shortuuid.New(),
		ScanCount: 0,
	}

	if err := initializers.DB.Create(&qr).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to save QR code: %v", err),
			"code":  "PERSISTENCE_FAILED",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"qr_code": qr})
}

func ListQRCodes(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)
	var qrCodes []models.QRCode

	if err := initializers.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&qrCodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to fetch QR codes: %v", err),
			"code":  "PERSISTENCE_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_codes": qrCodes})
}

func GetQRCode(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)
	id := c.Param("id")

	var qr models.QRCode
	if err := initializers.DB.First(&qr, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found", "code": "NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_code": qr})
}

func DeleteQRCode(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)
	id := c.Param("id")

	var qr models.QRCode
	if err := initializers.DB.First(&qr, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found", "code": "NOT_FOUND"})
		return
	}

	if err := initializers.DB.Delete(&qr).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to delete QR code: %v", err),
			"code":  "PERSISTENCE_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PreviewQRCode renders the submitted form state without persisting anything.
func PreviewQRCode(c *gin.Context) {
	var req qrCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "VALIDATION_FAILED"})
		return
	}

	opts, verr := req.derive()
	if verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"code":   "VALIDATION_FAILED",
			"fields": verr.FieldMap(),
		})
		return
	}

	png, err := qrstyle.RenderPNG(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to render QR code: %v", err)})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// DownloadQRCode renders the submitted form state as an attachment named
// after the current date. Render failures are a silent no-op.
func DownloadQRCode(c *gin.Context) {
	var req qrCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "VALIDATION_FAILED"})
		return
	}

	opts, verr := req.derive()
	if verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"code":   "VALIDATION_FAILED",
			"fields": verr.FieldMap(),
		})
		return
	}

	png, err := qrstyle.RenderPNG(opts)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	filename := fmt.Sprintf("qr-code-%s.png", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", png)
}

// UploadLogo validates a candidate logo file and returns it as an inline
// data URL for embedding into the form state.
func UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No logo uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read logo"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, qrstyle.MaxLogoBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read logo"})
		return
	}

	encoded, err := qrstyle.EncodeLogo(file.Header.Get("Content-Type"), data)
	switch err {
	case nil:
	case qrstyle.ErrNotAnImage:
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error(), "code": "NOT_AN_IMAGE"})
		return
	case qrstyle.ErrTooLarge:
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error(), "code": "TOO_LARGE"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo": encoded})
}

// ScanRedirect resolves a scan slug, bumps the scan counter atomically and
// redirects to the encoded content. This is the only writer of scan_count.
func ScanRedirect(c *gin.Context) {
	slug := c.Param("slug")

	var qr models.QRCode
	if err := initializers.DB.Where("scan_slug = ?", slug).First(&qr).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found", "code": "NOT_FOUND"})
		return
	}

	initializers.DB.Model(&qr).UpdateColumn("scan_count", gorm.Expr("scan_count + ?", 1))

	c.Redirect(http.StatusFound, qr.Value)
}
