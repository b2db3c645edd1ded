package hovercode

// QRType is the kind of content a QR code encodes.
type QRType string

const (
	QRTypeLink QRType = "Link"
	QRTypeText QRType = "Text"
)

// ErrorCorrection is the QR error correction level.
type ErrorCorrection string

const (
	ErrorCorrectionL ErrorCorrection = "L"
	ErrorCorrectionM ErrorCorrection = "M"
	ErrorCorrectionQ ErrorCorrection = "Q"
	ErrorCorrectionH ErrorCorrection = "H"
)

// Pattern is the module style of a QR code.
type Pattern string

const (
	PatternOriginal  Pattern = "Original"
	PatternCircles   Pattern = "Circles"
	PatternSquares   Pattern = "Squares"
	PatternDiamonds  Pattern = "Diamonds"
	PatternTriangles Pattern = "Triangles"
)

// EyeStyle is the style of the three finder patterns.
type EyeStyle string

const (
	EyeStyleSquare  EyeStyle = "Square"
	EyeStyleRounded EyeStyle = "Rounded"
	EyeStyleDrop    EyeStyle = "Drop"
	EyeStyleLeaf    EyeStyle = "Leaf"
)

// Frame is a decorative frame drawn around a QR code.
type Frame string

const (
	FrameBorder            Frame = "border"
	FrameBorderSmall       Frame = "border-small"
	FrameBorderLarge       Frame = "border-large"
	FrameSquare            Frame = "square"
	FrameSpeechBubble      Frame = "speech-bubble"
	FrameSpeechBubbleAbove Frame = "speech-bubble-above"
	FrameCard              Frame = "card"
	FrameCardAbove         Frame = "card-above"
	FrameTextFrame         Frame = "text-frame"
	FrameRoundFrame        Frame = "round-frame"
	FrameCircleViewfinder  Frame = "circle-viewfinder"
	FrameSolidSpin         Frame = "solid-spin"
	FrameBurst             Frame = "burst"
	FrameScatteredLines    Frame = "scattered-lines"
	FramePolkadot          Frame = "polkadot"
	FrameSwirl             Frame = "swirl"
)

// enumString returns the wire value of any string-backed enum. Values
// outside the declared constants are forwarded unchanged.
func enumString[E ~string](v E) string {
	return string(v)
}
