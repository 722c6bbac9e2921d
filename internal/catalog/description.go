package catalog

import (
	"strings"

	tstrings "tushare/pkg/strings"
)

// annotationMarkers start the trailing notes that upstream descriptions
// append to the summary sentence.
var annotationMarkers = []string{
	"Limit:",
	"Points:",
	"Permission:",
	"Note:",
	"Update:",
	"History:",
	"限量：",
	"积分：",
	"权限：",
	"说明：",
	"更新时间：",
	"历史数据：",
}

// CleanDescription reduces a description to its leading summary, suitable
// for one line of a listing.
func CleanDescription(desc string) string {
	cut := len(desc)
	for _, marker := range annotationMarkers {
		if i := strings.Index(desc, marker); i >= 0 && i < cut {
			cut = i
		}
	}
	s := strings.TrimSpace(desc[:cut])
	s = strings.TrimRight(s, ".。 ")
	return tstrings.TruncateDescription(s, tstrings.DefaultDescriptionMaxLen)
}
