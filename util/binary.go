package util

import (
	"slices"
	"strings"
)

// binaryExtensions is sorted, lookups binary search it
var binaryExtensions = []string{
	"7z",
	"aac",
	"ai",
	"apk",
	"ar",
	"avi",
	"bin",
	"bmp",
	"bz2",
	"cab",
	"cbr",
	"cbz",
	"class",
	"crx",
	"deb",
	"dll",
	"dmg",
	"doc",
	"docx",
	"dwg",
	"dxf",
	"dylib",
	"ebook",
	"egg",
	"eot",
	"eps",
	"epub",
	"exe",
	"flac",
	"flv",
	"gif",
	"gpx",
	"gz",
	"ico",
	"iso",
	"jar",
	"jpeg",
	"jpg",
	"kml",
	"kmz",
	"m4a",
	"mkv",
	"mobi",
	"mov",
	"mp3",
	"mp4",
	"mpeg",
	"mpg",
	"msg",
	"msi",
	"o",
	"odp",
	"ods",
	"ogg",
	"ogm",
	"otf",
	"pak",
	"pdf",
	"pickle",
	"pkl",
	"png",
	"ppt",
	"ps",
	"psd",
	"rar",
	"rpm",
	"rtf",
	"s7z",
	"shar",
	"sketch",
	"so",
	"svg",
	"tar",
	"tbz2",
	"tgz",
	"tif",
	"tiff",
	"tlz",
	"ttf",
	"war",
	"wasm",
	"wav",
	"webp",
	"whl",
	"wma",
	"wmv",
	"woff",
	"woff2",
	"xls",
	"xlsx",
	"xpi",
	"zip",
	"zipx",
}

// IsBinaryExt reports whether ext names an archive, media or compiled file.
// The extension may carry a leading dot, as returned by filepath.Ext.
func IsBinaryExt(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if len(ext) == 0 {
		return false
	}
	_, found := slices.BinarySearch(binaryExtensions, ext)
	return found
}
