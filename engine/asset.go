package engine

// ImageAsset is a decoded raster image owned by the engine.
type ImageAsset interface {
	Width() int
	Height() int
	Close()
}

// AudioAsset is a decoded audio clip owned by the engine.
type AudioAsset interface {
	// Duration returns the clip length in seconds.
	Duration() float64
	Close()
}

// FontAsset is a decoded font owned by the engine.
type FontAsset interface {
	Close()
}
