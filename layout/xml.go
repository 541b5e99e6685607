// Package layout loads layout.xml theme files and assembles the page:
// menus with their scroll points, static layer components, animation
// tables, fonts, and sound bindings.
package layout

import "encoding/xml"

// document is the root <layout> element.
type document struct {
	XMLName     xml.Name `xml:"layout"`
	Width       string   `xml:"width,attr"`
	Height      string   `xml:"height,attr"`
	Font        string   `xml:"font,attr"`
	FontColor   string   `xml:"fontColor,attr"`
	FontSize    string   `xml:"loadFontSize,attr"`
	MinShowTime string   `xml:"minShowTime,attr"`
	Monitor     string   `xml:"monitor,attr"`

	Sounds []soundNode `xml:"sound"`
	Menus  []menuNode  `xml:"menu"`
	Images []imageNode `xml:"image"`
	Videos []videoNode `xml:"video"`
	Texts  []textNode  `xml:"text"`
}

type soundNode struct {
	Type string `xml:"type,attr"`
	Src  string `xml:"src,attr"`
}

// viewAttrs are the position and presentation attributes shared by
// every drawable element. Values stay strings so an absent attribute
// is distinguishable from zero.
type viewAttrs struct {
	X       string `xml:"x,attr"`
	Y       string `xml:"y,attr"`
	XOffset string `xml:"xOffset,attr"`
	YOffset string `xml:"yOffset,attr"`
	XOrigin string `xml:"xOrigin,attr"`
	YOrigin string `xml:"yOrigin,attr"`

	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
	MinWidth  string `xml:"minWidth,attr"`
	MinHeight string `xml:"minHeight,attr"`
	MaxWidth  string `xml:"maxWidth,attr"`
	MaxHeight string `xml:"maxHeight,attr"`

	FontSize  string `xml:"fontSize,attr"`
	FontColor string `xml:"fontColor,attr"`

	Alpha string `xml:"alpha,attr"`
	Angle string `xml:"angle,attr"`
	Layer string `xml:"layer,attr"`

	BackgroundColor string `xml:"backgroundColor,attr"`
	BackgroundAlpha string `xml:"backgroundAlpha,attr"`

	Reflection         string `xml:"reflection,attr"`
	ReflectionDistance string `xml:"reflectionDistance,attr"`
	ReflectionScale    string `xml:"reflectionScale,attr"`
	ReflectionAlpha    string `xml:"reflectionAlpha,attr"`

	ContainerX      string `xml:"containerX,attr"`
	ContainerY      string `xml:"containerY,attr"`
	ContainerWidth  string `xml:"containerWidth,attr"`
	ContainerHeight string `xml:"containerHeight,attr"`

	Monitor string `xml:"monitor,attr"`
	Volume  string `xml:"volume,attr"`
}

type menuNode struct {
	viewAttrs
	Type               string `xml:"type,attr"`
	Mode               string `xml:"mode,attr"`
	ImageType          string `xml:"imageType,attr"`
	VideoType          string `xml:"videoType,attr"`
	Orientation        string `xml:"orientation,attr"`
	ScrollTime         string `xml:"scrollTime,attr"`
	ScrollAcceleration string `xml:"scrollAcceleration,attr"`
	MinScrollTime      string `xml:"minScrollTime,attr"`
	SelectedImage      string `xml:"selectedImage,attr"`
	TextFallback       string `xml:"textFallback,attr"`
	UseTextureCache    string `xml:"useTextureCache,attr"`
	MenuScrollReload   string `xml:"menuScrollReload,attr"`
	MenuIndex          string `xml:"menuIndex,attr"`

	ItemDefaults *itemNode   `xml:"itemDefaults"`
	Items        []itemNode  `xml:"item"`
	Events       []eventNode `xml:",any"`
}

type itemNode struct {
	viewAttrs
	Index    string `xml:"index,attr"`
	Selected string `xml:"selected,attr"`
	Spacing  string `xml:"spacing,attr"`

	Events []eventNode `xml:",any"`
}

type imageNode struct {
	viewAttrs
	Src                 string `xml:"src,attr"`
	Additive            string `xml:"additive,attr"`
	MenuScrollReload    string `xml:"menuScrollReload,attr"`
	AnimationDoneRemove string `xml:"animationDoneRemove,attr"`

	Events []eventNode `xml:",any"`
}

type videoNode struct {
	viewAttrs
	Src                 string `xml:"src,attr"`
	NumLoops            string `xml:"numLoops,attr"`
	SoftOverlay         string `xml:"softOverlay,attr"`
	PauseOnScroll       string `xml:"pauseOnScroll,attr"`
	MenuScrollReload    string `xml:"menuScrollReload,attr"`
	AnimationDoneRemove string `xml:"animationDoneRemove,attr"`

	Events []eventNode `xml:",any"`
}

type textNode struct {
	viewAttrs
	Value string `xml:"value,attr"`

	Events []eventNode `xml:",any"`
}

// eventNode is any onSomething animation element. The element name
// picks the event, menuIndex scopes it to menu depths.
type eventNode struct {
	XMLName   xml.Name
	MenuIndex string    `xml:"menuIndex,attr"`
	Sets      []setNode `xml:"set"`
}

type setNode struct {
	Duration string        `xml:"duration,attr"`
	Animates []animateNode `xml:"animate"`
}

type animateNode struct {
	Type      string  `xml:"type,attr"`
	From      *string `xml:"from,attr"`
	To        string  `xml:"to,attr"`
	Algorithm string  `xml:"algorithm,attr"`
	Playlist  string  `xml:"playlist,attr"`
}
