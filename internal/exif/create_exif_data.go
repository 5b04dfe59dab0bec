// Package exif stamps resolution metadata into encoded test card images.
package exif

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jis "github.com/dsoprea/go-jpeg-image-structure/v2"
	pis "github.com/dsoprea/go-png-image-structure/v2"

	"github.com/SethCurry/winres/pkg/resolution"
)

// Metadata is the set of ASCII tags written into IFD0.
type Metadata struct {
	// Description is written to ImageDescription.
	Description string

	// Software is written to Software.
	Software string
}

// Describe builds Metadata for a test card rendered at r, e.g.
// "854 x 480 (16:9, approximate from 853.333 x 480)".
func Describe(r resolution.Resolution, software string) Metadata {
	desc := fmt.Sprintf("%s (%s, %s)", r, r.AspectRatio(), r.Exactness())
	if !r.IsExact() {
		desc = fmt.Sprintf("%s (%s, %s from %s)", r, r.AspectRatio(), r.Exactness(), r.Size())
	}

	return Metadata{Description: desc, Software: software}
}

type exifWriter interface {
	SetExif(*exif.IfdBuilder) error
	Write(io.Writer) error
}

type wrappedChunkSlice struct {
	*pis.ChunkSlice
}

func (w wrappedChunkSlice) Write(to io.Writer) error {
	return w.WriteTo(to)
}

type exifExtractor func([]byte) (exifWriter, error)

// Writer stamps Metadata into an encoded image of one format.
type Writer func(imgBytes []byte, meta Metadata) ([]byte, error)

// WriterFor returns the Writer for an output format name.
func WriterFor(format string) (Writer, error) {
	switch format {
	case "jpeg", "jpg":
		return AddToJPEG, nil
	case "png":
		return AddToPNG, nil
	}

	return nil, fmt.Errorf("unknown output format %q", format)
}

func addExifToImage(imgBytes []byte, extractor exifExtractor, meta Metadata) ([]byte, error) {
	parsedImage, err := extractor(imgBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image with Exif extractor: %w", err)
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("failed to create new exif mapping: %w", err)
	}

	ti := exif.NewTagIndex()
	ib := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.TestDefaultByteOrder)

	err = addMetadata(ib, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to build new Exif metadata: %w", err)
	}

	err = parsedImage.SetExif(ib)
	if err != nil {
		return nil, fmt.Errorf("failed to set new Exif on image: %w", err)
	}

	buf := bytes.NewBuffer([]byte{})

	err = parsedImage.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to write image back to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// AddToPNG returns a copy of a PNG with meta written to an eXIf chunk.
func AddToPNG(imgBytes []byte, meta Metadata) ([]byte, error) {
	return addExifToImage(imgBytes, func(gotBytes []byte) (exifWriter, error) {
		parsed, err := pis.NewPngMediaParser().ParseBytes(gotBytes)
		if err != nil {
			return nil, err
		}

		sl, ok := parsed.(*pis.ChunkSlice)
		if !ok {
			return nil, fmt.Errorf("failed to convert parsed png to ChunkSlice: unexpected type %T", parsed)
		}

		return wrappedChunkSlice{sl}, nil
	}, meta)
}

// AddToJPEG returns a copy of a JPEG with meta written to an APP1 segment.
func AddToJPEG(imgBytes []byte, meta Metadata) ([]byte, error) {
	return addExifToImage(imgBytes, func(gotBytes []byte) (exifWriter, error) {
		parsed, err := jis.NewJpegMediaParser().ParseBytes(gotBytes)
		if err != nil {
			return nil, err
		}

		sl, ok := parsed.(*jis.SegmentList)
		if !ok {
			return nil, fmt.Errorf("failed to convert parsed image to SegmentList: unexpected type %T", parsed)
		}

		return sl, nil
	}, meta)
}

func addMetadata(ib *exif.IfdBuilder, meta Metadata) error {
	ifd0Ib, err := exif.GetOrCreateIbFromRootIb(ib, "IFD0")
	if err != nil {
		return fmt.Errorf("failed to create IFD0 ib: %w", err)
	}

	if meta.Software != "" {
		err = ifd0Ib.AddStandardWithName("Software", meta.Software)
		if err != nil {
			return fmt.Errorf("failed to set Software tag: %w", err)
		}
	}

	err = ifd0Ib.AddStandardWithName("ImageDescription", meta.Description)
	if err != nil {
		return fmt.Errorf("failed to set ImageDescription tag: %w", err)
	}

	return nil
}
