package identity

// Club is an entry in the fixed club registry. Clubs are not stored in the
// database; the registry is the source of truth for club identities.
type Club struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

var Clubs = []Club{
	{ID: "club_ieee", Name: "IEEE Student Branch", Email: "ieee@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=IEEE&background=00629B&color=fff"},
	{ID: "club_glug", Name: "GLUG PACE", Email: "glug@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=GLUG&background=333&color=fff"},
	{ID: "club_embed", Name: "Embed Club", Email: "embed@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=Embed&background=Edbb11&color=fff"},
	{ID: "club_aces", Name: "ACES (CS Dept)", Email: "aces@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=ACES&background=2563eb&color=fff"},
	{ID: "club_force", Name: "FORCE (Civil Dept)", Email: "force@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=FORCE&background=dc2626&color=fff"},
	{ID: "club_cultural", Name: "PACE Cultural Club", Email: "cultural@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=Cultural&background=db2777&color=fff"},
	{ID: "club_sports", Name: "PACE Sports Association", Email: "sports@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=Sports&background=16a34a&color=fff"},
	{ID: "club_nss", Name: "NSS Unit", Email: "nss@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=NSS&background=ea580c&color=fff"},
	{ID: "club_edc", Name: "EDC (Entrepreneurship)", Email: "edc@pace.edu.in", Avatar: "https://ui-avatars.com/api/?name=EDC&background=7c3aed&color=fff"},
}

// Roster maps known seat numbers to student names. Seat numbers outside the
// roster still resolve, with a placeholder name.
var Roster = map[string]string{
	"4PA21CS001": "Aditya Rao",
	"4PA21CS045": "Priya Shetty",
	"4PA21EC012": "Mohammed Zaid",
	"4PA21ME033": "Karthik Bhat",
	"4PA21CV008": "Ananya Naik",
	"4PA21IS022": "Rahul K",
	"4PA21CS101": "Sneha Gupta",
}
