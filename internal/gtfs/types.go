package gtfs

// Typed identifiers for the entity primary keys and the foreign keys that
// cross entity boundaries.
type (
	AgencyID  string
	StopID    string
	RouteID   string
	TripID    string
	ServiceID string
)

// Direction distinguishes the two travel directions of a trip.
type Direction int

const (
	DirectionOutbound Direction = 0
	DirectionInbound  Direction = 1
)

// WheelchairAccessible encodes whether a trip accommodates wheelchairs.
type WheelchairAccessible int

const (
	WheelchairAccessibleUnknown WheelchairAccessible = 0
	WheelchairAccessibleYes     WheelchairAccessible = 1
	WheelchairAccessibleNo      WheelchairAccessible = 2
)

// BikesAllowed encodes whether a trip accommodates bicycles.
type BikesAllowed int

const (
	BikesAllowedUnknown BikesAllowed = 0
	BikesAllowedYes     BikesAllowed = 1
	BikesAllowedNo      BikesAllowed = 2
)

// LocationType encodes the kind of place a stops row describes.
type LocationType int

const (
	LocationTypeStop         LocationType = 0
	LocationTypeStation      LocationType = 1
	LocationTypeEntrance     LocationType = 2
	LocationTypeGenericNode  LocationType = 3
	LocationTypeBoardingArea LocationType = 4
)

// WheelchairBoarding encodes wheelchair accessibility of a stop.
type WheelchairBoarding int

const (
	WheelchairBoardingUnknown WheelchairBoarding = 0
	WheelchairBoardingYes     WheelchairBoarding = 1
	WheelchairBoardingNo      WheelchairBoarding = 2
)

// RouteType encodes the mode of transport of a route.
type RouteType int

const (
	RouteTypeTram       RouteType = 0
	RouteTypeSubway     RouteType = 1
	RouteTypeRail       RouteType = 2
	RouteTypeBus        RouteType = 3
	RouteTypeFerry      RouteType = 4
	RouteTypeCableTram  RouteType = 5
	RouteTypeAerialLift RouteType = 6
	RouteTypeFunicular  RouteType = 7
	RouteTypeTrolleybus RouteType = 11
	RouteTypeMonorail   RouteType = 12
)

// PickupType encodes how passengers board at a stop time.
type PickupType int

const (
	PickupTypeRegular              PickupType = 0
	PickupTypeNone                 PickupType = 1
	PickupTypePhoneAgency          PickupType = 2
	PickupTypeCoordinateWithDriver PickupType = 3
)

// DropOffType encodes how passengers alight at a stop time.
type DropOffType int

const (
	DropOffTypeRegular              DropOffType = 0
	DropOffTypeNone                 DropOffType = 1
	DropOffTypePhoneAgency          DropOffType = 2
	DropOffTypeCoordinateWithDriver DropOffType = 3
)

// Timepoint encodes whether a stop time is exact or approximate.
type Timepoint int

const (
	TimepointApproximate Timepoint = 0
	TimepointExact       Timepoint = 1
)
