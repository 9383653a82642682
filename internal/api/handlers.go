package api

import "github.com/gin-gonic/gin"

// actor pulls the authenticated identity out of the request context.
func actor(c *gin.Context) (userID, email string) {
	if v, ok := c.Get("user_id"); ok {
		userID, _ = v.(string)
	}
	if v, ok := c.Get("admin_email"); ok {
		email, _ = v.(string)
	} else if v, ok := c.Get("user_email"); ok {
		email, _ = v.(string)
	}
	return userID, email
}
