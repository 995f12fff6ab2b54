package imagestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foodgram-go/internal/config"
	infraMinio "foodgram-go/internal/infra/minio"
)

var (
	ErrEmptyImage   = errors.New("图片内容为空")
	ErrInvalidImage = errors.New("无效的 base64 图片")
)

// 图片 Bucket 名称
const (
	RecipeImageBucket = "recipe-images"
	AvatarBucket      = "avatars"
)

// extByContentType 按嗅探到的内容类型选文件扩展名
var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodeBase64Image 解析 base64 图片（可带 data URI 前缀），返回原始字节和内容类型
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, "", ErrEmptyImage
	}

	// data:image/png;base64,xxxx 形式只取逗号后的数据部分
	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, ",")
		if idx < 0 {
			return nil, "", ErrInvalidImage
		}
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	contentType := http.DetectContentType(data)
	return data, contentType, nil
}

// Upload 解码 base64 图片并上传到指定 Bucket，返回公开访问 URL
// objectPrefix 用于按归属分目录，如 "12/recipe" 或 "12/avatar"
func Upload(ctx context.Context, bucket, objectPrefix, encoded string) (string, error) {
	data, contentType, err := DecodeBase64Image(encoded)
	if err != nil {
		return "", err
	}

	ext := extByContentType[contentType]
	if ext == "" {
		ext = "bin"
	}

	objectName := fmt.Sprintf("%s-%d.%s", objectPrefix, time.Now().UnixNano(), ext)
	if _, err := infraMinio.UploadFile(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}

	cfg := config.GetMinIO()
	return infraMinio.GetPublicURL(cfg.Endpoint, cfg.UseSSL, bucket, objectName), nil
}

// Remove 删除已上传的图片，imageURL 为 Upload 返回的公开访问 URL
func Remove(ctx context.Context, bucket, imageURL string) error {
	objectName := ObjectNameFromURL(bucket, imageURL)
	if objectName == "" {
		return ErrInvalidImage
	}
	return infraMinio.RemoveFile(ctx, bucket, objectName)
}

// ObjectNameFromURL 从公开访问 URL 中提取 Bucket 内的对象名，提取失败返回空串
func ObjectNameFromURL(bucket, imageURL string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}
	return imageURL[idx+len(marker):]
}
