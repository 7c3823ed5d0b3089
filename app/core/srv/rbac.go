package srv

import (
	"github.com/mikespook/gorbac/v2"

	"github.com/wayfarer-app/wayfarer/pkg/types"
)

const (
	RoleOwner     = "role-owner"
	RoleEditor    = "role-editor"
	RoleCommenter = "role-commenter"
	RoleViewer    = "role-viewer"

	PermissionOwner   = "owner"
	PermissionEdit    = "edit"
	PermissionComment = "comment"
	PermissionView    = "view"
)

func SetupRBACSrv() *RBACSrv {
	rbac := gorbac.New()

	pOwner := gorbac.NewStdPermission(PermissionOwner)
	pEdit := gorbac.NewStdPermission(PermissionEdit)
	pComment := gorbac.NewStdPermission(PermissionComment)
	pView := gorbac.NewStdPermission(PermissionView)

	roleOwner := gorbac.NewStdRole(RoleOwner)
	roleOwner.Assign(pOwner)

	roleEditor := gorbac.NewStdRole(RoleEditor)
	roleEditor.Assign(pEdit)

	roleCommenter := gorbac.NewStdRole(RoleCommenter)
	roleCommenter.Assign(pComment)

	roleViewer := gorbac.NewStdRole(RoleViewer)
	roleViewer.Assign(pView)

	rbac.Add(roleOwner)
	rbac.Add(roleEditor)
	rbac.Add(roleCommenter)
	rbac.Add(roleViewer)

	rbac.SetParent(RoleCommenter, RoleViewer)
	rbac.SetParent(RoleEditor, RoleCommenter)
	rbac.SetParent(RoleOwner, RoleEditor)

	return &RBACSrv{
		rbac: rbac,
	}
}

type RBACSrv struct {
	rbac *gorbac.RBAC
}

func (a *RBACSrv) CheckPermission(roleID, permissionID string) bool {
	return a.rbac.IsGranted(roleID, gorbac.NewStdPermission(permissionID), nil)
}

// RoleForPermission maps a granted share permission to its role.
func RoleForPermission(p types.SharePermission) string {
	switch p {
	case types.SharePermissionEdit:
		return RoleEditor
	case types.SharePermissionComment:
		return RoleCommenter
	default:
		return RoleViewer
	}
}

// PermissionCovers reports whether granted satisfies required, e.g. an edit
// grant covers a comment check.
func (a *RBACSrv) PermissionCovers(granted types.SharePermission, required types.SharePermission) bool {
	return a.CheckPermission(RoleForPermission(granted), string(required))
}
