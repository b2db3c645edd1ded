package api

import (
	"net/url"
)

// Endpoint paths relative to the API base URL.
const (
	PathCreateHovercode = "hovercode/create/"
)

// HovercodePath returns the path of a single QR code.
func HovercodePath(id string) string {
	return "hovercode/" + url.PathEscape(id) + "/"
}

// HovercodeActivityPath returns the tracking activity path of a QR code.
func HovercodeActivityPath(id string) string {
	return HovercodePath(id) + "activity/"
}

// HovercodeUpdatePath returns the update path of a QR code.
func HovercodeUpdatePath(id string) string {
	return HovercodePath(id) + "update/"
}

// HovercodeAddTagsPath returns the add-tags path of a QR code.
func HovercodeAddTagsPath(id string) string {
	return HovercodePath(id) + "tags/add/"
}

// HovercodeDeletePath returns the delete path of a QR code.
func HovercodeDeletePath(id string) string {
	return HovercodePath(id) + "delete/"
}

// WorkspaceHovercodesPath returns the list path of a workspace.
func WorkspaceHovercodesPath(workspaceID string) string {
	return "workspace/" + url.PathEscape(workspaceID) + "/hovercodes/"
}
