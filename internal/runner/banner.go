package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
        __                               __
|  |   ____ ___  / _\ ____ _____ _______ ____|  |__
|  | _/ __ \\  \/  / / __ \\__  \\_  __ \_/ ___\  |  \
|  |_\  ___/ >    < \  ___/ / __ \|  | \/\  \___|   Y  \
|____/\___  >__/\_ \ \___  >____  /__|    \___  >___|  /
          \/      \/     \/     \/            \/     \/
`)

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tlexsearch %s\n\n", version)
}
