package main

import (
	"saju-lab/internal/apiversion"
	"saju-lab/saju"
)

// VersionInfo is served by /api/version
type VersionInfo struct {
	API           string `json:"api"`
	Engine        string `json:"engine"`
	Software      string `json:"software"`
	SubjectSchema int    `json:"subject_schema"`
}

// GetVersionInfo returns the current version info
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		API:           apiversion.Current.String(),
		Engine:        saju.EngineVersion,
		Software:      "saju-lab",
		SubjectSchema: SubjectRecordVersion,
	}
}
