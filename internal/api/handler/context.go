package handler

import "github.com/labstack/echo/v4"

// ctxIdentity extracts the authorization context injected by the Identity
// middleware. Absent values read as an anonymous non-admin caller, so the
// list endpoint stays public.
func ctxIdentity(c echo.Context) (userID string, isAdmin bool) {
	userID, _ = c.Get("user_id").(string)
	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin
}
