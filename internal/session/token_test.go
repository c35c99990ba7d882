package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
)

var issued = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	identity := &models.Identity{ID: "user-123", Role: models.RoleStudent}
	tok, err := GenerateToken(identity, []byte("super-secret"), time.Hour, issued)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, []byte("super-secret"), issued.Add(time.Minute))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != "user-123" || claims.Role != models.RoleStudent {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(&models.Identity{ID: "u1"}, []byte("secret"), time.Minute, issued)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("secret"), issued.Add(2*time.Minute))
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(&models.Identity{ID: "u2"}, []byte("right-secret"), 0, issued)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(tok, []byte("wrong-secret"), issued); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", []byte("k"), issued); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
