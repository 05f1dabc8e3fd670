package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// TargetMarkerTag marks the indicator that previews the click destination.
type TargetMarkerTag struct{}

var TargetMarkerTagComponent = NewComponent[TargetMarkerTag]()
