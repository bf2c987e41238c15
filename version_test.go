package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saju-lab/internal/apiversion"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	v, err := apiversion.Parse(info.API)
	require.NoError(t, err)
	assert.Equal(t, apiversion.Current, v)
	assert.Equal(t, SubjectRecordVersion, info.SubjectSchema)

	_, err = apiversion.Parse(info.Engine)
	assert.NoError(t, err, "engine version %q", info.Engine)
}
