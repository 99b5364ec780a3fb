// Command trailview opens a window showing orbiting ships with fading
// trails.
//
// Environment:
//
//	TRAILS_SEED      simulation seed (default: clock)
//	TRAILS_SHIPS     number of ships
//	TRAILS_CAPACITY  trail vertex capacity, positive and even
//	TRAILS_DEBUG     enable debug logging
//	TRAILS_PROFILE   "cpu" or "mem" to write a profile to the working directory
package main

import "github.com/oortviewer/trails/internal/viewer"

func main() {
	viewer.RunDesktop()
}
