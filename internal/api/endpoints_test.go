package api

import "testing"

func TestEndpointPaths(t *testing.T) {
	const id = "2a8c1b1e-7b7f-4d6a-9a35-1f1a4c1d9e11"

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"create", PathCreateHovercode, "hovercode/create/"},
		{"get", HovercodePath(id), "hovercode/" + id + "/"},
		{"activity", HovercodeActivityPath(id), "hovercode/" + id + "/activity/"},
		{"update", HovercodeUpdatePath(id), "hovercode/" + id + "/update/"},
		{"add tags", HovercodeAddTagsPath(id), "hovercode/" + id + "/tags/add/"},
		{"delete", HovercodeDeletePath(id), "hovercode/" + id + "/delete/"},
		{"workspace list", WorkspaceHovercodesPath("ws-1"), "workspace/ws-1/hovercodes/"},
		{"escaped id", HovercodePath("a/b c"), "hovercode/a%2Fb%20c/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("path = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
