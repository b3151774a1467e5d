package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/NavalhaDigital/barber-agenda/internal/config"
)

const (
	maxLogoSize = 512
	webpQuality = 80
)

// LogoStorage normaliza a logo da barbearia (redimensiona e converte
// para webp) e publica no bucket S3.
type LogoStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewLogoStorage retorna nil quando o bucket não está configurado;
// o endpoint de upload responde indisponível nesse caso.
func NewLogoStorage(cfg *config.Config) *LogoStorage {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}

	// endpoint alternativo (minio etc.)
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &LogoStorage{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

func (s *LogoStorage) Upload(ctx context.Context, barbershopID uint, img image.Image) (string, error) {
	normalized := shrink(img, maxLogoSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, normalized, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("logos/%d/%d.webp", barbershopID, time.Now().Unix())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// shrink reduz a imagem para caber em max×max mantendo a proporção;
// imagens menores passam direto.
func shrink(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= max && h <= max {
		return src
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
