package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qrmenu/pkg/resp"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 5 << 20 // 5MB

type UploadController struct {
	UploadDir string
}

func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{UploadDir: uploadDir}
}

// POST /api/upload
// One image ≤5MB; both size and MIME type are checked here, not just in the
// browser.
func (ctl *UploadController) Image(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	if file.Size > maxUploadBytes {
		resp.BadRequest(c, "image exceeds the 5MB limit")
		return
	}
	// Sniff the payload instead of trusting the multipart header.
	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	head := make([]byte, 512)
	n, err := src.Read(head)
	src.Close()
	if err != nil && err != io.EOF {
		resp.ServerError(c, err)
		return
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		resp.BadRequest(c, "only image uploads are accepted")
		return
	}

	if err := os.MkdirAll(ctl.UploadDir, 0755); err != nil {
		resp.ServerError(c, err)
		return
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%d_%d%s", utils.CurrentUserID(c), time.Now().UnixNano(), ext)
	dst := filepath.Join(ctl.UploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"url": "/uploads/" + name})
}
