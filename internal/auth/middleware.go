package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Gate validates bearer tokens and stores the signed-in identity in locals.
// When redirectTo is non-empty an unauthenticated request is redirected there
// (the sign-in entry point) instead of receiving a 401; auth failures and
// signed-out requests are treated identically.
func Gate(secret, redirectTo string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		reject := func(message string) error {
			if redirectTo != "" {
				return c.Redirect(redirectTo, fiber.StatusFound)
			}
			return fiber.NewError(fiber.StatusUnauthorized, message)
		}

		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return reject("missing bearer token")
		}

		parsed, err := parseGateClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
			return secretBytes, nil
		})
		if err != nil {
			return reject(err.Error())
		}

		claims, ok := parsed.Claims.(*Claims)
		if !ok || !parsed.Valid {
			return reject("token invalid")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_name", claims.Name)
		c.Locals("user_email", claims.Email)
		return c.Next()
	}
}

// JWTMiddleware is Gate without a redirect target, for JSON API routes.
func JWTMiddleware(secret string) fiber.Handler {
	return Gate(secret, "")
}

var parseGateClaimsFn = jwt.ParseWithClaims

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
