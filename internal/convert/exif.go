package convert

import (
	"os"
	"strings"

	serr "binviz/internal/errors"
	"binviz/internal/log"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

var exifFields = map[string]exif.FieldName{
	"CameraMake":       exif.Make,
	"CameraModel":      exif.Model,
	"DateTimeOriginal": exif.DateTimeOriginal,
	"Software":         exif.Software,
}

// ReadEXIF extracts a few EXIF fields from an image file. A file without
// EXIF data yields an empty map, not an error.
func ReadEXIF(path string) (map[string]string, error) {
	if path == "" {
		return nil, serr.NewIOError(serr.MsgNoFile, "", serr.NoFileSelected, nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, serr.NewIOError(serr.MsgReadFile, path, serr.FileReadFailed, err)
	}
	defer f.Close()

	meta := make(map[string]string)
	x, err := exif.Decode(f)
	if err != nil {
		log.LogWithFields(log.F("path", path)).Debugf("no EXIF data: %v", err)
		return meta, nil
	}

	for name, field := range exifFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		if v, err := tag.StringVal(); err == nil {
			if v = strings.TrimSpace(v); v != "" {
				meta[name] = v
			}
		}
	}
	return meta, nil
}
