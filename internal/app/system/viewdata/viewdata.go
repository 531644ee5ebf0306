// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Banner state: one of the two may be set per render. Banners
	// auto-dismiss client-side after a fixed delay.
	Success string
	Error   string
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)
	return BaseVM{
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		Title:       title,
		CurrentPath: r.URL.Path,
		CSRFToken:   csrf.Token(r),
	}
}

// SetError records an inline error banner for the next render.
func (vm *BaseVM) SetError(msg string) { vm.Error = msg }

// SetSuccess records an inline success banner for the next render.
func (vm *BaseVM) SetSuccess(msg string) { vm.Success = msg }
