package dataset

// Column names of the survey exports.
const (
	ColEpoch       = "Epoch"
	ColNorthing    = "UTM Northing"
	ColEasting     = "UTM Easting"
	ColDepth       = "Depth"
	ColZone        = "UTM Zone"
	ColHemisphere  = "UTM Hemisphere"
	ColLatitude    = "Latitude"
	ColLongitude   = "Longitude"
	ColDatetime    = "Datetime"
	ColPositionX   = "PositionX"
	ColPositionY   = "PositionY"
	ColPositionZ   = "PositionZ"
	ColQuaternion1 = "Quaternion1"
	ColQuaternion2 = "Quaternion2"
	ColQuaternion3 = "Quaternion3"
	ColQuaternion4 = "Quaternion4"
	ColRoll        = "Roll"
	ColPitch       = "Pitch"
	ColHeading     = "Heading"
	ColDirectionX  = "DirectionX"
	ColDirectionY  = "DirectionY"
	ColDirectionZ  = "DirectionZ"
)

// PositionColumns are the filtered channels of a positioning export.
var PositionColumns = []string{ColNorthing, ColEasting, ColDepth}

// TransducerColumns name the transducer track written next to a camera
// trajectory.
var TransducerColumns = [3]string{"Transducer Northing", "Transducer Easting", "Transducer Depth"}
