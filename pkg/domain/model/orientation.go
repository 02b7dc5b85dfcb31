// 指示: PakkanenAnastacia
package model

// Orientation はノードの左右区分を表す。
type Orientation string

const (
	// OrientationLeft は左側を表す。
	OrientationLeft Orientation = "L"
	// OrientationRight は右側を表す。
	OrientationRight Orientation = "R"
	// OrientationCenter は中央を表す。
	OrientationCenter Orientation = "C"
)

// Valid は既知の左右区分かを返す。
func (o Orientation) Valid() bool {
	switch o {
	case OrientationLeft, OrientationRight, OrientationCenter:
		return true
	}
	return false
}

// Reversed は左右反転した区分を返す。中央はそのまま返す。
func (o Orientation) Reversed() Orientation {
	switch o {
	case OrientationLeft:
		return OrientationRight
	case OrientationRight:
		return OrientationLeft
	}
	return o
}
