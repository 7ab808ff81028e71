// Package fileref classifies user-supplied attachment paths and handles
// the base64 file I/O the Bedrock schemas expect.
//
// Bedrock strongly types media, which is a burden for callers that often
// want to just pass a path and let the software figure it out. The
// classification here does that rote mapping: storage location from the
// URI scheme, media kind from the file extension, nothing from the bytes.
package fileref

import (
	"fmt"
	"strings"
)

// S3Scheme prefixes references to media hosted in S3 rather than on the
// local filesystem.
const S3Scheme = "s3://"

// Location says where the referenced bytes live.
type Location int

const (
	LocationLocal Location = iota
	LocationS3
)

func (l Location) String() string {
	if l == LocationS3 {
		return "s3"
	}
	return "local"
}

// Kind is the coarse media kind derived from a file extension.
type Kind int

const (
	KindUnsupported Kind = iota
	KindImage
	KindVideo
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindDocument:
		return "document"
	default:
		return "unsupported"
	}
}

// Reference is a classified attachment path. Path keeps the original
// string exactly as the user supplied it; expansion happens at read time.
type Reference struct {
	Path      string
	Stem      string
	Extension string // lowercased, without the dot
	Location  Location
	Kind      Kind
}

// UnsupportedKindError reports a reference whose extension maps to no
// supported media kind. It carries the original path so callers can echo
// it when aborting the turn.
type UnsupportedKindError struct {
	Path string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported attachment type: %s", e.Path)
}

// Extension tables, per the Bedrock Converse media formats. The video
// list is the nine formats Converse accepts; m4v and avi are not on it.
var (
	imageExtensions = map[string]bool{
		"gif": true, "jpg": true, "jpeg": true, "png": true, "webp": true,
	}
	videoExtensions = map[string]bool{
		"flv": true, "mkv": true, "mov": true, "mp4": true, "mpeg": true,
		"mpg": true, "3gp": true, "webm": true, "wmv": true,
	}
	documentExtensions = map[string]bool{
		"csv": true, "doc": true, "docx": true, "html": true, "md": true,
		"pdf": true, "txt": true, "xls": true, "xlsx": true,
	}
)

// KindOf maps a file extension (with or without a leading dot, any case)
// to a media kind. Unknown extensions map to KindUnsupported.
func KindOf(extension string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	switch {
	case imageExtensions[ext]:
		return KindImage
	case videoExtensions[ext]:
		return KindVideo
	case documentExtensions[ext]:
		return KindDocument
	default:
		return KindUnsupported
	}
}

// Classify derives the location, stem, extension and media kind of an
// attachment reference. It does no I/O. References with an extension
// outside the supported tables fail with UnsupportedKindError.
func Classify(ref string) (Reference, error) {
	r := Reference{Path: ref}
	if strings.HasPrefix(ref, S3Scheme) {
		r.Location = LocationS3
	}

	r.Stem, r.Extension = splitName(ref)
	r.Kind = KindOf(r.Extension)
	if r.Kind == KindUnsupported {
		return r, &UnsupportedKindError{Path: ref}
	}
	return r, nil
}

// splitName takes the last path segment and splits it on the final dot.
// A name with no dot yields an empty extension, not an error.
func splitName(ref string) (stem, ext string) {
	name := ref
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i], strings.ToLower(name[i+1:])
	}
	return name, ""
}
