package nova

import (
	"github.com/quarterturn/bedrock-cli/fileref"
)

// AttachmentBlock converts a classified file reference into the content
// block the schema expects for its media kind:
//
//   - local images, videos and documents are read fully and sent as
//     inline base64 bytes
//   - S3-hosted videos are sent by location, no bytes fetched
//   - S3-hosted images and documents are rejected; the schema only
//     allows remote references for video
//
// File bytes are read once per call and never cached.
func AttachmentBlock(ref fileref.Reference) (Content, error) {
	switch {
	case ref.Kind == fileref.KindImage && ref.Location == fileref.LocationLocal:
		encoded, err := fileref.ReadBase64(ref.Path)
		if err != nil {
			return Content{}, &ReadError{Path: ref.Path, Err: err}
		}
		return Content{Image: &Image{
			Format: ref.Extension,
			Source: ImageSource{Bytes: encoded},
		}}, nil

	case ref.Kind == fileref.KindVideo && ref.Location == fileref.LocationLocal:
		encoded, err := fileref.ReadBase64(ref.Path)
		if err != nil {
			return Content{}, &ReadError{Path: ref.Path, Err: err}
		}
		return Content{Video: &Video{
			Format: ref.Extension,
			Source: VideoSource{Bytes: encoded},
		}}, nil

	case ref.Kind == fileref.KindVideo && ref.Location == fileref.LocationS3:
		return Content{Video: &Video{
			Format: ref.Extension,
			Source: VideoSource{S3Location: &S3Location{URI: ref.Path}},
		}}, nil

	case ref.Kind == fileref.KindDocument && ref.Location == fileref.LocationLocal:
		encoded, err := fileref.ReadBase64(ref.Path)
		if err != nil {
			return Content{}, &ReadError{Path: ref.Path, Err: err}
		}
		return Content{Document: &Document{
			Format: ref.Extension,
			Name:   ref.Stem,
			Source: DocumentSource{Bytes: encoded},
		}}, nil

	case ref.Kind == fileref.KindUnsupported:
		return Content{}, &fileref.UnsupportedKindError{Path: ref.Path}

	default:
		return Content{}, &UnsupportedCombinationError{
			Path:     ref.Path,
			Kind:     ref.Kind.String(),
			Location: ref.Location.String(),
		}
	}
}
