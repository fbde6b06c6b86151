// Package webdemo adapts the analysis engines to the flat float32/byte
// buffers a browser host exchanges with WebAssembly.
//
// A [Session] owns one spectrogram engine, one waveform engine and one
// power-spectrum estimator. All methods are safe to call before the
// spectrogram engine is initialized; they return empty results instead of
// failing, so a render loop never has to special-case startup.
package webdemo
