package hovercode

import (
	"context"
	"strings"

	"github.com/hovercode/client-go/internal/api"
)

// maxActivityPageSize is the largest page_size accepted by GetActivity.
const maxActivityPageSize = 200

// requester is the transport used by resource clients.
type requester interface {
	Get(ctx context.Context, endpoint string, p api.Params) (any, error)
	Post(ctx context.Context, endpoint string, req api.Request) (any, error)
	Put(ctx context.Context, endpoint string, req api.Request) (any, error)
	Delete(ctx context.Context, endpoint string, p api.Params) (any, error)
}

// Hovercodes creates and manages QR codes. Obtain it with Client.Hovercodes.
type Hovercodes struct {
	api requester
}

// CreateParams describes a QR code to create. Only fields that are set are
// sent; the API applies its own defaults to the rest.
type CreateParams struct {
	// Workspace is the workspace ID from the Hovercode settings page.
	Workspace string
	// QRData is the encoded content: a URL for QRTypeLink, any text for
	// QRTypeText.
	QRData string

	QRType Optional[QRType]
	// Dynamic codes can be edited and tracked after creation. Codes are
	// static unless set.
	Dynamic     Optional[bool]
	DisplayName Optional[string]
	// Domain is a custom shortlink domain; dynamic codes only.
	Domain Optional[string]
	// GeneratePNG includes PNG and SVG file URLs in the response at the cost
	// of a slower call.
	GeneratePNG     Optional[bool]
	GPSTracking     Optional[bool]
	ErrorCorrection Optional[ErrorCorrection]
	// Size is the width in pixels.
	Size            Optional[int]
	LogoURL         Optional[string]
	LogoRound       Optional[bool]
	PrimaryColor    Optional[string]
	BackgroundColor Optional[string]
	Pattern         Optional[Pattern]
	EyeStyle        Optional[EyeStyle]
	Frame           Optional[Frame]
	HasBorder       Optional[bool]
	// Text is the frame caption, for frames that have one.
	Text Optional[string]
}

func (p CreateParams) requestBody() (map[string]any, error) {
	if strings.TrimSpace(p.Workspace) == "" {
		return nil, validationError("workspace must be a non-empty string.", nil)
	}
	if p.QRData == "" {
		return nil, validationError("qr_data must be a non-empty string.", nil)
	}

	body := map[string]any{
		"workspace": p.Workspace,
		"qr_data":   p.QRData,
	}
	putEnum(body, "qr_type", p.QRType)
	p.Dynamic.put(body, "dynamic")
	p.DisplayName.put(body, "display_name")
	p.Domain.put(body, "domain")
	p.GeneratePNG.put(body, "generate_png")
	p.GPSTracking.put(body, "gps_tracking")
	putEnum(body, "error_correction", p.ErrorCorrection)
	p.Size.put(body, "size")
	p.LogoURL.put(body, "logo_url")
	p.LogoRound.put(body, "logo_round")
	p.PrimaryColor.put(body, "primary_color")
	p.BackgroundColor.put(body, "background_color")
	putEnum(body, "pattern", p.Pattern)
	putEnum(body, "eye_style", p.EyeStyle)
	putEnum(body, "frame", p.Frame)
	p.HasBorder.put(body, "has_border")
	p.Text.put(body, "text")
	return body, nil
}

// ListParams filters a workspace listing.
type ListParams struct {
	// Query searches links, display names, shortlinks and tag names.
	Query Optional[string]
	Page  Optional[int]
}

// ActivityParams pages through tracking activity.
type ActivityParams struct {
	Page Optional[int]
	// PageSize is at most 200.
	PageSize Optional[int]
}

// UpdateParams lists the fields to change. At least one must be set.
type UpdateParams struct {
	// QRData can only be changed on dynamic Link codes.
	QRData      Optional[string]
	DisplayName Optional[string]
	GPSTracking Optional[bool]
}

// Create creates a QR code and returns it as the API describes it.
//
// Example:
//
//	qr, err := client.Hovercodes().Create(ctx, hovercode.CreateParams{
//	    Workspace: "YOUR-WORKSPACE-ID",
//	    QRData:    "https://example.com",
//	    Dynamic:   hovercode.Some(true),
//	    Frame:     hovercode.Some(hovercode.FrameCircleViewfinder),
//	    Pattern:   hovercode.Some(hovercode.PatternDiamonds),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(qr["id"])
func (h *Hovercodes) Create(ctx context.Context, params CreateParams) (map[string]any, error) {
	body, err := params.requestBody()
	if err != nil {
		return nil, err
	}
	result, err := h.api.Post(ctx, api.PathCreateHovercode, api.Request{JSON: body})
	return object("Create", result, err)
}

// ListForWorkspace returns one page of the QR codes in a workspace. Pass the
// result to ParsePage for typed access.
func (h *Hovercodes) ListForWorkspace(ctx context.Context, workspaceID string, params ListParams) (map[string]any, error) {
	if err := requireID("workspace ID", workspaceID); err != nil {
		return nil, err
	}

	var query []api.QueryParam
	if q, ok := params.Query.Get(); ok {
		query = append(query, api.Param("q", q))
	}
	if page, ok := params.Page.Get(); ok {
		query = append(query, api.Param("page", page))
	}

	result, err := h.api.Get(ctx, api.WorkspaceHovercodesPath(workspaceID), api.Params{Query: query})
	return object("ListForWorkspace", result, err)
}

// Get retrieves a QR code. PNG and SVG URLs appear once the files have been
// rendered, even when GeneratePNG was not set at creation.
func (h *Hovercodes) Get(ctx context.Context, id string) (map[string]any, error) {
	if err := requireID("QR code ID", id); err != nil {
		return nil, err
	}
	result, err := h.api.Get(ctx, api.HovercodePath(id), api.Params{})
	return object("Get", result, err)
}

// GetActivity returns one page of scan activity for a QR code.
func (h *Hovercodes) GetActivity(ctx context.Context, id string, params ActivityParams) (map[string]any, error) {
	if err := requireID("QR code ID", id); err != nil {
		return nil, err
	}
	if size, ok := params.PageSize.Get(); ok && size > maxActivityPageSize {
		return nil, validationError("page_size must be <= 200.", map[string]any{"page_size": size})
	}

	var query []api.QueryParam
	if page, ok := params.Page.Get(); ok {
		query = append(query, api.Param("page", page))
	}
	if size, ok := params.PageSize.Get(); ok {
		query = append(query, api.Param("page_size", size))
	}

	result, err := h.api.Get(ctx, api.HovercodeActivityPath(id), api.Params{Query: query})
	return object("GetActivity", result, err)
}

// Update changes a QR code and returns the updated code.
func (h *Hovercodes) Update(ctx context.Context, id string, params UpdateParams) (map[string]any, error) {
	if err := requireID("QR code ID", id); err != nil {
		return nil, err
	}
	if !params.QRData.IsSet() && !params.DisplayName.IsSet() && !params.GPSTracking.IsSet() {
		return nil, validationError("Update requires at least one field to update.", nil)
	}

	body := make(map[string]any, 3)
	params.QRData.put(body, "qr_data")
	params.DisplayName.put(body, "display_name")
	params.GPSTracking.put(body, "gps_tracking")

	result, err := h.api.Put(ctx, api.HovercodeUpdatePath(id), api.Request{JSON: body})
	return object("Update", result, err)
}

// AddTags adds tags to a QR code and returns the code.
//
// Example:
//
//	_, err := client.Hovercodes().AddTags(ctx, "QR-CODE-ID", []hovercode.TagInput{
//	    hovercode.TagTitle("marketing"),
//	    hovercode.TagID("TAG-ID"),
//	})
func (h *Hovercodes) AddTags(ctx context.Context, id string, tags []TagInput) (map[string]any, error) {
	if err := requireID("QR code ID", id); err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, validationError("AddTags requires a non-empty tags list.", nil)
	}

	body := make([]any, 0, len(tags))
	for _, tag := range tags {
		tagBody, err := tag.requestBody()
		if err != nil {
			return nil, err
		}
		body = append(body, tagBody)
	}

	result, err := h.api.Post(ctx, api.HovercodeAddTagsPath(id), api.Request{JSON: body})
	return object("AddTags", result, err)
}

// Delete permanently deletes a QR code. The API answers 204, so the returned
// object is empty.
func (h *Hovercodes) Delete(ctx context.Context, id string) (map[string]any, error) {
	if err := requireID("QR code ID", id); err != nil {
		return nil, err
	}
	result, err := h.api.Delete(ctx, api.HovercodeDeletePath(id), api.Params{})
	return object("Delete", result, err)
}

func requireID(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationError(name+" must be a non-empty string.", nil)
	}
	return nil
}

// object converts a transport result into the JSON object every Hovercodes
// operation returns.
func object(op string, result any, err error) (map[string]any, error) {
	if err != nil {
		return nil, wrapError(err)
	}
	obj, ok := result.(map[string]any)
	if !ok {
		return nil, validationError("Unexpected response type from "+op+"().", result)
	}
	return obj, nil
}
