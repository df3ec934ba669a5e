package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/invite/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体标识，LoadFont 传入这些值时使用 Go 字体而不是读取文件
const (
	BuiltinFontRegular = "builtin:regular"
	BuiltinFontBold    = "builtin:bold"
)

// placeholder 图片尺寸（庆祝图片缺失时使用）
const (
	placeholderWidth  = 400
	placeholderHeight = 300
)

// ResourceManager is responsible for centralized management of invitation resources.
// It provides loading and caching mechanisms for images, music and font faces,
// ensuring that resources are loaded only once and reused by every scene.
//
// Resources are read from the embedded asset tree when it has been initialized
// (see package embedded) and the path exists there, otherwise from disk. This lets
// the --config override and tests point at files outside the binary.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps
// and are only touched from the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img, err := rm.LoadImage("assets/images/celebration.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> Image
	audioCache      map[string]*audio.Player          // path -> looping music player
	audioContext    *audio.Context                    // Global audio context for audio decoding
	fontSourceCache map[string]*text.GoTextFaceSource // path -> parsed font
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing music.
//     May be nil, in which case LoadMusic always fails with ErrNoAudioResource.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		audioCache:      make(map[string]*audio.Player),
		audioContext:    audioContext,
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// ReadResource 读取资源文件内容
// 优先从嵌入资源读取，不存在时回退到磁盘
func ReadResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	return data, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := ReadResource(path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageOrPlaceholder 加载图片，失败时记录警告并返回占位图
// 占位图同样会被缓存，之后的调用不再重复输出警告
func (rm *ResourceManager) LoadImageOrPlaceholder(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}
	log.Printf("[ResourceManager] Warning: %v, using placeholder", err)

	placeholder := ebiten.NewImage(placeholderWidth, placeholderHeight)
	placeholder.Fill(color.RGBA{R: 60, G: 60, B: 72, A: 255})
	rm.imageCache[path] = placeholder
	return placeholder
}

// LoadMusic loads a music file and wraps it in an infinite loop.
// If the track has already been loaded, it returns the cached player.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav); all are
// resampled to the audio context's sample rate.
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error wrapping ErrNoAudioResource if the track cannot be used.
func (rm *ResourceManager) LoadMusic(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("%w: no audio context for %s", ErrNoAudioResource, path)
	}

	data, err := ReadResource(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioResource, err)
	}

	stream, err := rm.decodeMusic(path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioResource, err)
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// lengthReadSeeker 解码后的音频流
type lengthReadSeeker interface {
	io.ReadSeeker
	Length() int64
}

// decodeMusic 按扩展名选择解码器
func (rm *ResourceManager) decodeMusic(path string, reader io.Reader) (lengthReadSeeker, error) {
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// MusicSessionFactory 返回背景音乐控制器使用的会话工厂
// 工厂在调用时才加载音乐，失败时返回的错误包装 ErrNoAudioResource
func (rm *ResourceManager) MusicSessionFactory(path string) SessionFactory {
	return func() (AudioSession, error) {
		player, err := rm.LoadMusic(path)
		if err != nil {
			return nil, err
		}
		return NewPlayerSession(player), nil
	}
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// The face is cached with a key combining path and size.
// BuiltinFontRegular and BuiltinFontBold select the bundled Go fonts.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// MustLoadFont 加载字体，失败时回退到内置常规字体
func (rm *ResourceManager) MustLoadFont(path string, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(path, size)
	if err == nil {
		return face
	}
	log.Printf("[ResourceManager] Warning: %v, using built-in font", err)
	face, err = rm.LoadFont(BuiltinFontRegular, size)
	if err != nil {
		// 内置字体解析失败说明二进制本身损坏
		panic(fmt.Sprintf("built-in font unavailable: %v", err))
	}
	return face
}

func (rm *ResourceManager) loadFontSource(path string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSourceCache[path]; ok {
		return source, nil
	}

	var data []byte
	switch path {
	case BuiltinFontRegular, "":
		data = goregular.TTF
	case BuiltinFontBold:
		data = gobold.TTF
	default:
		var err error
		data, err = ReadResource(path)
		if err != nil {
			return nil, err
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	rm.fontSourceCache[path] = source
	return source, nil
}

