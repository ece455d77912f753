package router

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruitmall/fruitmall-client/internal/localstore"
	"github.com/fruitmall/fruitmall-client/internal/logger"
	"github.com/fruitmall/fruitmall-client/internal/model"
)

type recorder struct {
	shown   []Navigation
	titles  []string
	notices []string
}

func newTestRouter(t *testing.T) (*Router, *recorder, *localstore.Store) {
	t.Helper()
	local := localstore.NewStore(test.NewApp())
	r := New(local, logger.Nop())
	rec := &recorder{}
	r.SetShowCallback(func(nav Navigation) { rec.shown = append(rec.shown, nav) })
	r.SetTitleCallback(func(title string) { rec.titles = append(rec.titles, title) })
	r.SetNoticeCallback(func(msg string) { rec.notices = append(rec.notices, msg) })
	return r, rec, local
}

func (rec *recorder) last() Navigation {
	return rec.shown[len(rec.shown)-1]
}

func TestRouter_PublicRouteAllowed(t *testing.T) {
	r, rec, _ := newTestRouter(t)

	require.NoError(t, r.Navigate("/store-info"))
	require.Len(t, rec.shown, 1)
	assert.Equal(t, "StoreInfo", rec.last().Route.Name)
	assert.Equal(t, []string{"店铺信息 - 水果商城"}, rec.titles)
	assert.Empty(t, rec.notices)
}

func TestRouter_UnauthenticatedRedirectsToLogin(t *testing.T) {
	paths := []string{"/orders", "/cart", "/profile"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			r, rec, _ := newTestRouter(t)

			require.NoError(t, r.Navigate(path))
			require.Len(t, rec.shown, 1)
			assert.Equal(t, "Login", rec.last().Route.Name)
			assert.Equal(t, path, rec.last().Query.Get("redirect"))
		})
	}
}

func TestRouter_AdminRouteWithoutRolesRedirectsHome(t *testing.T) {
	r, rec, local := newTestRouter(t)
	require.NoError(t, local.SaveSession(&model.User{ID: 1, Username: "alice", Roles: []string{}}, "tok"))

	require.NoError(t, r.Navigate("/admin/dashboard"))
	require.Len(t, rec.shown, 1)
	assert.Equal(t, "Home", rec.last().Route.Name)
	assert.Equal(t, []string{PermissionDeniedNotice}, rec.notices)
}

func TestRouter_AdminRouteWithAdminRoleAllowed(t *testing.T) {
	r, rec, local := newTestRouter(t)
	require.NoError(t, local.SaveSession(&model.User{ID: 1, Username: "root", Roles: []string{model.RoleAdmin}}, "tok"))

	require.NoError(t, r.Navigate("/admin/dashboard"))
	require.Len(t, rec.shown, 1)
	assert.Equal(t, "AdminDashboard", rec.last().Route.Name)
	assert.Equal(t, "管理员仪表盘 - 水果商城", rec.titles[0])
	assert.Empty(t, rec.notices)
}

func TestRouter_NonAdminUserRedirectedWithNotice(t *testing.T) {
	r, rec, local := newTestRouter(t)
	require.NoError(t, local.SaveSession(&model.User{ID: 2, Username: "bob", Roles: []string{"ROLE_USER"}}, "tok"))

	require.NoError(t, r.Navigate("/admin/products"))
	assert.Equal(t, "Home", rec.last().Route.Name)
	require.Len(t, rec.notices, 1)
	assert.Equal(t, PermissionDeniedNotice, rec.notices[0])
}

func TestRouter_PathParameterBinding(t *testing.T) {
	r, rec, _ := newTestRouter(t)

	require.NoError(t, r.Navigate("/product/42"))
	require.Len(t, rec.shown, 1)
	assert.Equal(t, "ProductDetail", rec.last().Route.Name)
	assert.Equal(t, "42", rec.last().Params["id"])
}

func TestRouter_UnknownPath(t *testing.T) {
	r, rec, _ := newTestRouter(t)

	err := r.Navigate("/no-such-page")
	require.ErrorIs(t, err, ErrRouteNotFound)
	assert.Empty(t, rec.shown)
}

func TestRouter_LogoutRegatesNavigation(t *testing.T) {
	r, rec, local := newTestRouter(t)
	require.NoError(t, local.SaveSession(&model.User{ID: 1, Username: "alice", Roles: []string{"ROLE_USER"}}, "tok"))

	require.NoError(t, r.Navigate("/orders"))
	assert.Equal(t, "Orders", rec.last().Route.Name)

	local.ClearSession()
	require.NoError(t, r.Navigate("/orders"))
	assert.Equal(t, "Login", rec.last().Route.Name)
	assert.Equal(t, "/orders", rec.last().Query.Get("redirect"))
}

func TestRouter_CurrentTracksLastNavigation(t *testing.T) {
	r, _, _ := newTestRouter(t)
	assert.Nil(t, r.Current())

	require.NoError(t, r.Navigate("/contact-us"))
	require.NotNil(t, r.Current())
	assert.Equal(t, "ContactUs", r.Current().Route.Name)
}
