// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ffi

import "strconv"

// Status is the integer result code reported by the foreign library.
type Status int

// Status codes, numbered as in cairo_status_t.
const (
	StatusSuccess Status = iota
	StatusNoMemory
	StatusInvalidRestore
	StatusInvalidPopGroup
	StatusNoCurrentPoint
	StatusInvalidMatrix
	StatusInvalidStatus
	StatusNullPointer
	StatusInvalidString
	StatusInvalidPathData
	StatusReadError
	StatusWriteError
	StatusSurfaceFinished
	StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch
	StatusInvalidContent
	StatusInvalidFormat
	StatusInvalidVisual
	StatusFileNotFound
	StatusInvalidDash
	StatusInvalidDSCComment
	StatusInvalidIndex
	StatusClipNotRepresentable
	StatusTempFileError
	StatusInvalidStride
	StatusFontTypeMismatch
	StatusUserFontImmutable
	StatusUserFontError
	StatusNegativeCount
	StatusInvalidClusters
	StatusInvalidSlant
	StatusInvalidWeight
	StatusInvalidSize
	StatusUserFontNotImplemented
	StatusDeviceTypeMismatch
	StatusDeviceError
	StatusInvalidMeshConstruction
	StatusDeviceFinished
	StatusJBIG2GlobalMissing
	StatusPNGError
	StatusFreetypeError
	StatusWin32GDIError
	StatusTagError
	StatusDWriteError
	StatusSVGFontError
)

var statusNames = [...]string{
	StatusSuccess:                 "SUCCESS",
	StatusNoMemory:                "NO_MEMORY",
	StatusInvalidRestore:          "INVALID_RESTORE",
	StatusInvalidPopGroup:         "INVALID_POP_GROUP",
	StatusNoCurrentPoint:          "NO_CURRENT_POINT",
	StatusInvalidMatrix:           "INVALID_MATRIX",
	StatusInvalidStatus:           "INVALID_STATUS",
	StatusNullPointer:             "NULL_POINTER",
	StatusInvalidString:           "INVALID_STRING",
	StatusInvalidPathData:         "INVALID_PATH_DATA",
	StatusReadError:               "READ_ERROR",
	StatusWriteError:              "WRITE_ERROR",
	StatusSurfaceFinished:         "SURFACE_FINISHED",
	StatusSurfaceTypeMismatch:     "SURFACE_TYPE_MISMATCH",
	StatusPatternTypeMismatch:     "PATTERN_TYPE_MISMATCH",
	StatusInvalidContent:          "INVALID_CONTENT",
	StatusInvalidFormat:           "INVALID_FORMAT",
	StatusInvalidVisual:           "INVALID_VISUAL",
	StatusFileNotFound:            "FILE_NOT_FOUND",
	StatusInvalidDash:             "INVALID_DASH",
	StatusInvalidDSCComment:       "INVALID_DSC_COMMENT",
	StatusInvalidIndex:            "INVALID_INDEX",
	StatusClipNotRepresentable:    "CLIP_NOT_REPRESENTABLE",
	StatusTempFileError:           "TEMP_FILE_ERROR",
	StatusInvalidStride:           "INVALID_STRIDE",
	StatusFontTypeMismatch:        "FONT_TYPE_MISMATCH",
	StatusUserFontImmutable:       "USER_FONT_IMMUTABLE",
	StatusUserFontError:           "USER_FONT_ERROR",
	StatusNegativeCount:           "NEGATIVE_COUNT",
	StatusInvalidClusters:         "INVALID_CLUSTERS",
	StatusInvalidSlant:            "INVALID_SLANT",
	StatusInvalidWeight:           "INVALID_WEIGHT",
	StatusInvalidSize:             "INVALID_SIZE",
	StatusUserFontNotImplemented:  "USER_FONT_NOT_IMPLEMENTED",
	StatusDeviceTypeMismatch:      "DEVICE_TYPE_MISMATCH",
	StatusDeviceError:             "DEVICE_ERROR",
	StatusInvalidMeshConstruction: "INVALID_MESH_CONSTRUCTION",
	StatusDeviceFinished:          "DEVICE_FINISHED",
	StatusJBIG2GlobalMissing:      "JBIG2_GLOBAL_MISSING",
	StatusPNGError:                "PNG_ERROR",
	StatusFreetypeError:           "FREETYPE_ERROR",
	StatusWin32GDIError:           "WIN32_GDI_ERROR",
	StatusTagError:                "TAG_ERROR",
	StatusDWriteError:             "DWRITE_ERROR",
	StatusSVGFontError:            "SVG_FONT_ERROR",
}

// String returns the cairo name of the status, or a numeric form for codes
// this package does not know.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "STATUS(" + strconv.Itoa(int(s)) + ")"
}

// OK reports whether s is StatusSuccess.
func (s Status) OK() bool {
	return s == StatusSuccess
}
