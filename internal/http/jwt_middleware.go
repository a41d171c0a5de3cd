package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hepi-staff/internal/service"
)

const authClaimsKey = "auth_claims"

// bearerToken extrae el token de "Authorization: Bearer <token>". El esquema no distingue
// mayusculas.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="hepi-staff"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// JWTAuthMiddleware exige un access token de hepi-staff y deja sus claims en el contexto.
// Un token vencido se informa aparte para que el cliente sepa que debe usar /auth/refresh.
func JWTAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication not configured"})
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := jwtSvc.ParseAccessToken(token)
		switch {
		case errors.Is(err, service.ErrJWTExpired):
			abortUnauthorized(c, "access token expired")
			return
		case err != nil:
			abortUnauthorized(c, "invalid access token")
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// RequireEmployee corta antes del handler a las cuentas que no son de empleado. Va
// despues de JWTAuthMiddleware.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if !claims.IsEmployee {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only employees can take the test"})
			return
		}
		c.Next()
	}
}

// GetAuthClaims devuelve los claims que dejo JWTAuthMiddleware.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
