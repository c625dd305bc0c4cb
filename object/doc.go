// Package object holds the static catalog of BTHome v2 object ids and the rules for encoding a
// single reading value to its wire bytes. The catalog is a closed set matching the published
// format revision: there is no runtime registration, adding an id is a catalog edit.
//
// See the "Sensor Data" table at https://bthome.io/format/ for the published encoding rules.
package object
