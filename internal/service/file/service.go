package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/leavedesk/leave-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// Avatars wider than this are downscaled before upload.
const maxAvatarWidth = 512

type FileService interface {
	// UploadAvatar validates, normalizes and uploads an avatar image and
	// returns its stable URL. Any failure aborts the caller's operation.
	UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

func (s *fileServiceImpl) UploadAvatar(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	normalized, ext, contentType, err := normalizeAvatar(buffer, ext)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s-%s%s", ownerID, uuid.New().String(), ext)
	key := filepath.ToSlash(filepath.Join("avatars", ownerID, newFilename))

	uploadedKey, err := s.storage.Upload(ctx, bytes.NewReader(normalized), key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url, err := s.storage.GetURL(ctx, uploadedKey)
	if err != nil {
		return "", fmt.Errorf("failed to resolve avatar URL: %w", err)
	}
	return url, nil
}

// normalizeAvatar decodes the image and downscales anything wider than
// maxAvatarWidth. Downscaled images are re-encoded as JPEG; images already
// within bounds pass through untouched.
func normalizeAvatar(buffer []byte, ext string) ([]byte, string, string, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxAvatarWidth {
		contentType := "image/jpeg"
		if ext == ".png" {
			contentType = "image/png"
		}
		return buffer, ext, contentType, nil
	}

	ratio := float64(maxAvatarWidth) / float64(bounds.Dx())
	newHeight := int(float64(bounds.Dy()) * ratio)
	dst := image.NewRGBA(image.Rect(0, 0, maxAvatarWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", "", fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), ".jpg", "image/jpeg", nil
}
