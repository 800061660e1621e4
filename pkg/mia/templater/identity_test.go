package templater

import (
	"errors"
	"strings"
	"testing"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

func TestIdentityDerivedForms(t *testing.T) {
	tests := []struct {
		id          Identity
		underscored string
		dotted      string
		slashed     string
	}{
		{Identity{"de", "horsimann", "Tea"}, "de_horsimann_tea", "de.horsimann.tea", "de/horsimann/tea"},
		{Identity{"com", "example", "MyGame"}, "com_example_mygame", "com.example.mygame", "com/example/mygame"},
		{Identity{"org", "some-one", "x"}, "org_some-one_x", "org.some-one.x", "org/some-one/x"},
	}

	for _, tt := range tests {
		t.Run(tt.dotted, func(t *testing.T) {
			if got := tt.id.Underscored(); got != tt.underscored {
				t.Errorf("Underscored() = %q, want %q", got, tt.underscored)
			}
			if got := tt.id.Dotted(); got != tt.dotted {
				t.Errorf("Dotted() = %q, want %q", got, tt.dotted)
			}
			if got := tt.id.Slashed(); got != tt.slashed {
				t.Errorf("Slashed() = %q, want %q", got, tt.slashed)
			}
			parts := []string{tt.id.Namespace, tt.id.Domain, tt.id.AppLower()}
			if tt.id.Dotted() != strings.Join(parts, ".") {
				t.Errorf("Dotted() does not join the parts")
			}
		})
	}
}

func TestIdentityValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      Identity
		wantErr string
	}{
		{"valid", Identity{"de", "horsimann", "Tea"}, ""},
		{"underscore namespace", Identity{"d_e", "horsimann", "Tea"}, "namespace"},
		{"underscore domain", Identity{"de", "hors_imann", "Tea"}, "domain"},
		{"underscore app", Identity{"de", "horsimann", "My_Tea"}, "app"},
		{"empty app", Identity{"de", "horsimann", ""}, "app must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, miaerrors.ErrInvalidIdentity) {
				t.Errorf("error %v does not wrap ErrInvalidIdentity", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
