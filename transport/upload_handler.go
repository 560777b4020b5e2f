package transport

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

// Upload stores a multipart file under the configured upload directory and
// returns the public URL path. The stored name is a uuid so uploads never
// collide or overwrite.
func (s *RestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.Config.Upload.MaxSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	newUUID, _ := uuid.NewRandom()
	fileName := newUUID.String() + filepath.Ext(header.Filename)

	if err := os.MkdirAll(s.Config.Upload.Dir, 0o755); err != nil {
		logger.Error("[Upload] mkdir upload dir", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	dst, err := os.Create(filepath.Join(s.Config.Upload.Dir, fileName))
	if err != nil {
		logger.Error("[Upload] create file", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error("[Upload] write file", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeCreated(w, model.UploadResponse{
		FileName: fileName,
		URL:      s.Config.Upload.PublicPath + "/" + fileName,
	})
}
