package blob

import (
	"bytes"
	"strconv"

	"blob-store/core/logger"
	"blob-store/core/storage"
	"blob-store/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/", h.HandleReadPath)
	// HEAD first: Get also registers a HEAD route for the same path.
	group.Head("/:bucket/*", h.HandleStat)
	group.Get("/:bucket/*", h.HandleRead)
	group.Put("/:bucket/*", h.HandleWrite)
}

// HandleReadPath streams the object named by the "path" query parameter,
// e.g. GET /objects?path=gs://assets/images/logo.png.
func (h *Handler) HandleReadPath(c *fiber.Ctx) error {
	loc, err := ParseLocation(c.Query("path"))
	if err != nil {
		return h.fail(c, err)
	}
	return h.send(c, loc.Bucket, loc.Key)
}

// HandleRead streams an object.
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	loc, err := objectParams(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.send(c, loc.Bucket, loc.Key)
}

// HandleStat returns an object's headers without its body.
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	loc, err := objectParams(c)
	if err != nil {
		return h.fail(c, err)
	}

	attrs, err := h.service.StatObject(c.UserContext(), loc.Bucket, loc.Key)
	if err != nil {
		return h.fail(c, err)
	}
	setObjectHeaders(c, attrs)
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(attrs.Size, 10))
	c.Status(fiber.StatusOK)
	return nil
}

// HandleWrite stores the request body as an object. The request Content-Type
// becomes the object's content type; ?cache=true enables Cache-Control.
func (h *Handler) HandleWrite(c *fiber.Ctx) error {
	loc, err := objectParams(c)
	if err != nil {
		return h.fail(c, err)
	}
	body := c.Body()

	opts := []WriteOption{WithCacheControl(utils.ToBool(c.Query("cache")))}
	if ct := c.Get(fiber.HeaderContentType); ct != "" {
		opts = append(opts, WithContentType(ct))
	}

	if err := h.service.WriteBlob(c.UserContext(), loc.Bucket, loc.Key, bytes.NewReader(body), int64(len(body)), opts...); err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"bucket": loc.Bucket,
		"key":    loc.Key,
		"size":   len(body),
	})
}

// send looks the object up first so a missing object is a 404 rather than a
// stream that fails part way.
func (h *Handler) send(c *fiber.Ctx, bucket, key string) error {
	ctx := c.UserContext()

	attrs, err := h.service.StatObject(ctx, bucket, key)
	if err != nil {
		return h.fail(c, err)
	}

	rc, err := h.service.ReadObject(ctx, bucket, key)
	if err != nil {
		return h.fail(c, err)
	}

	setObjectHeaders(c, attrs)
	// The stream is closed by fasthttp once the body has been sent.
	return c.SendStream(rc, int(attrs.Size))
}

func objectParams(c *fiber.Ctx) (Location, error) {
	loc := Location{Bucket: c.Params("bucket"), Key: c.Params("*")}
	if loc.Bucket == "" || loc.Key == "" {
		return Location{}, invalidArgumentf("object path %q needs a bucket and a key", c.Path())
	}
	return loc, nil
}

func setObjectHeaders(c *fiber.Ctx, attrs storage.ObjectAttrs) {
	contentType := attrs.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	if attrs.CacheControl != "" {
		c.Set(fiber.HeaderCacheControl, attrs.CacheControl)
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error("Object request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Info("Object request rejected", zap.String("path", c.Path()), zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case IsInvalidArgument(err):
		return fiber.StatusBadRequest
	case IsNotFound(err):
		return fiber.StatusNotFound
	case IsStorageUnavailable(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
