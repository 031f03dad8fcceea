package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod(MethodPix))
	assert.True(t, ValidMethod(MethodCard))
	assert.True(t, ValidMethod(MethodCredits))
	assert.False(t, ValidMethod(Method("boleto")))
	assert.False(t, ValidMethod(Method("")))
}

func TestResolveProgram(t *testing.T) {
	choice := ProgramTotalPass

	tests := []struct {
		name           string
		acceptsTP      bool
		acceptsWH      bool
		sessionChoice  *Program
		profileDefault Program
		want           Program
		wantChoice     bool
	}{
		{"both accepted without choice pauses", true, true, nil, ProgramNone, "", true},
		{"both accepted with choice uses it", true, true, &choice, ProgramNone, ProgramTotalPass, false},
		{"only totalpass auto-selects", true, false, nil, ProgramNone, ProgramTotalPass, false},
		{"only wellhub auto-selects", false, true, nil, ProgramNone, ProgramWellhub, false},
		{"neither falls back to profile default", false, false, nil, ProgramWellhub, ProgramWellhub, false},
		{"neither and no default means none", false, false, nil, "", ProgramNone, false},
		{"session choice ignored when only one accepted", true, false, &choice, ProgramNone, ProgramTotalPass, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needsChoice := ResolveProgram(tt.acceptsTP, tt.acceptsWH, tt.sessionChoice, tt.profileDefault)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChoice, needsChoice)
		})
	}
}
