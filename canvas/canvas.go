// Package canvas maps text-to-image prompts onto the Amazon Nova Canvas
// InvokeModel schema and saves the returned images.
//
// Request and response shapes follow the published structure:
// https://docs.aws.amazon.com/nova/latest/userguide/image-gen-req-resp-structure.html
package canvas

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/quarterturn/bedrock-cli/fileref"
)

// ModelID is the Canvas model identifier; Canvas is invoked directly,
// not through an inference profile.
const ModelID = "amazon.nova-canvas-v1:0"

const taskTextToImage = "TEXT_IMAGE"

type Request struct {
	TaskType          string            `json:"taskType"`
	TextToImageParams TextToImageParams `json:"textToImageParams"`

	ImageGenerationConfig *ImageGenerationConfig `json:"imageGenerationConfig,omitempty"`
}

type TextToImageParams struct {
	Text         string `json:"text"`
	NegativeText string `json:"negativeText,omitempty"`
}

// ImageGenerationConfig holds the optional generation knobs; when none
// are set the key is omitted and Canvas applies its defaults.
type ImageGenerationConfig struct {
	NumberOfImages *int   `json:"numberOfImages,omitempty"`
	Quality        string `json:"quality,omitempty"`
	Width          *int   `json:"width,omitempty"`
	Height         *int   `json:"height,omitempty"`
	Seed           *int64 `json:"seed,omitempty"`
}

type Response struct {
	Images []string `json:"images"`
	Error  string   `json:"error,omitempty"`
}

// BuildRequest assembles a TEXT_IMAGE request. negative and cfg are
// optional.
func BuildRequest(prompt, negative string, cfg *ImageGenerationConfig) Request {
	return Request{
		TaskType: taskTextToImage,
		TextToImageParams: TextToImageParams{
			Text:         prompt,
			NegativeText: negative,
		},
		ImageGenerationConfig: cfg,
	}
}

// Marshal serializes the request body for InvokeModel.
func (r Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Decode parses a Canvas response into its base64-encoded images. A
// response-level error field is fatal, as is a body that fails to parse.
func Decode(body []byte) ([]string, error) {
	var rsp Response
	if err := json.Unmarshal(body, &rsp); err != nil {
		return nil, fmt.Errorf("malformed canvas response: %w, body: %s", err, body)
	}
	if rsp.Error != "" {
		return nil, fmt.Errorf("canvas generation failed: %s", rsp.Error)
	}
	return rsp.Images, nil
}

// SaveImages writes each base64 image under dir as a numbered png and
// returns the written paths.
func SaveImages(images []string, dir string) ([]string, error) {
	prefix := time.Now().Format("20060102-150405")
	paths := make([]string, 0, len(images))
	for i, encoded := range images {
		path := filepath.Join(dir, fmt.Sprintf("canvas-%s-%d.png", prefix, i+1))
		if err := fileref.WriteBase64(path, encoded); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
