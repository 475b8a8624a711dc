package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-autoanchors/internal/yamlutil"
)

type testConfig struct {
	Label  string `yaml:"label"`
	Advert bool   `yaml:"advert"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		wantAny bool
		want    testConfig
	}{
		{
			name: "valid YAML",
			data: []byte("label: Inhalt\nadvert: true"),
			dest: &testConfig{},
			want: testConfig{Label: "Inhalt", Advert: true},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("label: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "input too large",
			data:    []byte("label: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
		{
			name:    "unknown field rejected",
			data:    []byte("label: x\nunknown: y"),
			dest:    &testConfig{},
			wantAny: true,
		},
		{
			name:    "malformed YAML",
			data:    []byte("label: [unclosed"),
			dest:    &testConfig{},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantAny:
				if err == nil {
					t.Fatal("UnmarshalStrict() expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
				}
				if got := *tt.dest.(*testConfig); got != tt.want {
					t.Errorf("UnmarshalStrict() = %+v, want %+v", got, tt.want)
				}
			}
		})
	}
}
