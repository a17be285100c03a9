package core

// Color is the drawing role of a screen cell. The front end decides how
// each role looks.
type Color uint8

// Cell roles used by the splitter view.
const (
	ColorDefault  Color = iota
	ColorHUD            // score line
	ColorStatus         // goal / progress text
	ColorWon            // level cleared text
	ColorLost           // run over text
	ColorFlash          // transient event message
	ColorCaptured       // captured area shading
	ColorSeam           // border between live regions
	ColorPreview        // aimed cut
	ColorWall           // growing wall
	ColorBall
	ColorCrosshair
	ColorFrame // overlay box border
	ColorTitle // overlay title
)
