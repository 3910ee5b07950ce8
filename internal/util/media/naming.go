package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"ytstill/internal/model"
	"ytstill/internal/util"
)

// ImageExtensions are the still-image formats offered by the image picker.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp", ".gif"}

// AudioExtensions are the audio formats offered by the audio picker.
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".aac", ".flac", ".ogg", ".opus", ".wma"}

// OutputBasename builds a safe, deterministic base filename (without
// extension) from the audio file's stem, the chosen resolution, and the
// chosen audio format, e.g. "my_song_yt_1280p720_aac".
func OutputBasename(audioPath string, r model.Resolution, codec model.AudioCodec) string {
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	stem = util.SanitizeFilename(stem)
	res := fmt.Sprintf("%dp%d", r.Width, r.Height)
	return strings.Join([]string{stem, "yt", res, codec.Short()}, "_")
}

// OutputPath joins the basename with the container extension implied by the
// codec's container spec suffix. The encoder rewrites the suffix anyway if
// it disagrees with the container table; this keeps the two in agreement.
func OutputPath(dir, basename, container string) string {
	return filepath.Join(dir, basename+"."+container)
}
