package v1handler

import (
	"errors"
	"net/http"
	"strings"
	"travel/pkg/logger"
	"travel/pkg/objectstore"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const defaultMaxUploadBytes = 5 << 20

func (h *Handler) maxUpload() int64 {
	if h.opts.MaxUploadBytes > 0 {
		return h.opts.MaxUploadBytes
	}

	return defaultMaxUploadBytes
}

// storageFailed keeps semantic errors of the store and hides everything else.
func storageFailed(err error, action string) error {
	var se *serrors.Error
	if errors.As(err, &se) {
		return err
	}

	return serrors.Wrap(serrors.ErrInternal, err, "failed to %s file", action)
}

// upload stores an image posted as the multipart field "file" under the
// optional "folder" field and returns its public URL. The type is detected
// from the file content.
func (h *Handler) upload(c echo.Context) error {
	if h.objects == nil {
		return fail(c, objectstore.ErrNotConfigured)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, serrors.Wrap(serrors.ErrBadRequest, err, "file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file"))
	}
	defer f.Close()

	contentType, err := objectstore.Sniff(f)
	if err != nil {
		return fail(c, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file"))
	}
	if err := objectstore.CheckImage(contentType, fh.Size, h.maxUpload()); err != nil {
		return fail(c, err)
	}

	ctx := reqCtx(c)
	obj, err := h.objects.Upload(ctx, c.FormValue("folder"), fh.Filename, contentType, f, fh.Size)
	if err != nil {
		logger.Error(ctx, "upload failed", zap.String("file", fh.Filename), zap.Error(err))

		return fail(c, storageFailed(err, "upload"))
	}

	return send(c, http.StatusCreated, result.OK(*obj, "file uploaded"))
}

func (h *Handler) deleteUpload(c echo.Context) error {
	if h.objects == nil {
		return fail(c, objectstore.ErrNotConfigured)
	}

	key := strings.TrimSpace(c.QueryParam("key"))
	if key == "" || strings.Contains(key, "..") {
		return fail(c, serrors.With(serrors.ErrBadRequest, "key is required"))
	}

	ctx := reqCtx(c)
	if err := h.objects.Delete(ctx, key); err != nil {
		logger.Error(ctx, "file delete failed", zap.String("key", key), zap.Error(err))

		return fail(c, storageFailed(err, "delete"))
	}

	return send(c, http.StatusOK, result.OK(struct {
		Key string `json:"key"`
	}{Key: key}, "file deleted"))
}
