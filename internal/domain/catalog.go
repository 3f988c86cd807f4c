package domain

// Catalog es el registro de personas. Se construye una vez al arrancar
// el proceso y despues solo se lee; no hay mutacion compartida.
type Catalog struct {
	personas map[PersonaID]Persona
}

// NewCatalog arma un catalogo a partir de una lista de personas.
// Util en tests para inyectar pesos o keywords controlados.
func NewCatalog(personas []Persona) *Catalog {
	m := make(map[PersonaID]Persona, len(personas))
	for _, p := range personas {
		if p.ScoringWeight <= 0 {
			p.ScoringWeight = 1.0
		}
		m[p.ID] = p
	}
	return &Catalog{personas: m}
}

// Get devuelve la persona por id.
func (c *Catalog) Get(id PersonaID) (Persona, bool) {
	p, ok := c.personas[id]
	return p, ok
}

// All devuelve las personas en el orden canonico (alfabetico por id).
func (c *Catalog) All() []Persona {
	out := make([]Persona, 0, len(AllPersonaIDs))
	for _, id := range AllPersonaIDs {
		if p, ok := c.personas[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// DefaultCatalog construye el catalogo fijo de los 9 arquetipos del producto.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Persona{
		{
			ID:          PersonaBuilder,
			DisplayName: "The Builder",
			TypeLabel:   "Creator",
			Description: "Turns ideas into tangible things and measures progress by what gets finished.",
			Traits:      []string{"practical", "persistent", "hands-on", "methodical"},
			CoreValues:  []string{"craftsmanship", "progress", "self-reliance", "usefulness"},
			CoreNeeds:   []string{"concrete projects", "visible results", "room to tinker"},
			Keywords:    []string{"build", "create", "make", "craft", "project", "fix"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You show love by doing; the people close to you learn to read care in what you repair, cook and construct for them.",
				DomainCareer:        "You thrive where something concrete leaves your hands at the end of the week; abstract roles without output drain you fast.",
				DomainHealth:        "You stick to routines you can measure and improve; vague wellness advice without a plan rarely survives your first busy week.",
				DomainLifestyle:     "Your home doubles as a workshop and that is how you like it; unfinished projects are a feature, not a mess.",
				DomainPurpose:       "Meaning comes from leaving useful things behind; you want to point at something real and say that exists because of me.",
			},
		},
		{
			ID:          PersonaConnector,
			DisplayName: "The Connector",
			TypeLabel:   "Networker",
			Description: "Draws energy from people and builds bridges between them almost by reflex.",
			Traits:      []string{"outgoing", "warm", "persuasive", "spontaneous"},
			CoreValues:  []string{"belonging", "generosity of spirit", "openness", "fun"},
			CoreNeeds:   []string{"regular social contact", "being in the loop", "shared experiences"},
			Keywords:    []string{"people", "friends", "network", "social", "community", "together"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You collect people and keep them; your circle is wide and you are usually the one who remembers birthdays and makes the group chat happen.",
				DomainCareer:        "You do your best work in teams and through relationships; a role without human contact feels like a punishment no salary can fix.",
				DomainHealth:        "You move more when movement is social; a training partner keeps you consistent where willpower alone never did.",
				DomainLifestyle:     "Your calendar fills itself; you would rather be slightly overbooked than face an empty weekend.",
				DomainPurpose:       "You find meaning in bringing people together; the introductions you make quietly change lives.",
			},
		},
		{
			ID:          PersonaDreamer,
			DisplayName: "The Dreamer",
			TypeLabel:   "Visionary",
			Description: "Lives partly in the future, pulled forward by possibility more than by circumstance.",
			Traits:      []string{"imaginative", "idealistic", "sensitive", "original"},
			CoreValues:  []string{"imagination", "authenticity", "beauty", "hope"},
			CoreNeeds:   []string{"unstructured time", "creative outlets", "people who take ideas seriously"},
			Keywords:    []string{"imagine", "dream", "vision", "possibility", "wonder", "someday"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You idealize the people you love; the gap between who they are and who they could be is where both your devotion and your disappointments live.",
				DomainCareer:        "You need work that lets you imagine; execution-only roles starve the part of you that sees what does not exist yet.",
				DomainHealth:        "Your energy follows your inspiration; when a vision grips you, sleep and meals quietly lose the negotiation.",
				DomainLifestyle:     "You keep notebooks of plans and half-worlds; your ideal day has a long empty stretch with nothing scheduled in it.",
				DomainPurpose:       "You are here to picture better futures; your restlessness is not a flaw, it is the engine.",
			},
		},
		{
			ID:          PersonaDriver,
			DisplayName: "The Driver",
			TypeLabel:   "Leader",
			Description: "Sets a direction, takes charge and measures life in goals reached.",
			Traits:      []string{"decisive", "ambitious", "direct", "competitive"},
			CoreValues:  []string{"achievement", "autonomy", "clarity", "momentum"},
			CoreNeeds:   []string{"clear goals", "control over outcomes", "recognition of results"},
			Keywords:    []string{"lead", "achieve", "win", "goal", "ambition", "results"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You take the wheel in your closest bonds; the people who last around you are the ones who push back without flinching.",
				DomainCareer:        "You climb by default; a role without a next rung stops being a job and becomes a waiting room.",
				DomainHealth:        "You train like you work, with targets and numbers; rest only happens when it is written into the plan.",
				DomainLifestyle:     "Your days are scheduled tight and you prefer it that way; drifting feels worse to you than being busy.",
				DomainPurpose:       "Meaning is a summit to you; the point is not arriving, it is always having the next one picked out.",
			},
		},
		{
			ID:          PersonaExplorer,
			DisplayName: "The Explorer",
			TypeLabel:   "Adventurer",
			Description: "Chooses the unknown over the comfortable and treats novelty as oxygen.",
			Traits:      []string{"curious", "adaptable", "independent", "restless"},
			CoreValues:  []string{"freedom", "novelty", "experience", "courage"},
			CoreNeeds:   []string{"variety", "autonomy of movement", "the next horizon"},
			Keywords:    []string{"travel", "adventure", "discover", "explore", "freedom", "new"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You bond fast and deep on the road; the harder work for you is the slow, stationary kind of intimacy.",
				DomainCareer:        "You need movement in your work; the moment a role becomes fully predictable you start drafting the exit.",
				DomainHealth:        "You are fittest when activity is an adventure; gyms bore you but a trail never does.",
				DomainLifestyle:     "You own little and move light; your most valuable possession is an open calendar.",
				DomainPurpose:       "Your meaning is the search itself; you trust that the interesting life is found, not planned.",
			},
		},
		{
			ID:          PersonaGiver,
			DisplayName: "The Giver",
			TypeLabel:   "Supporter",
			Description: "Orients naturally toward other people's needs and finds identity in being useful to them.",
			Traits:      []string{"empathetic", "generous", "attentive", "self-sacrificing"},
			CoreValues:  []string{"compassion", "loyalty", "service", "gratitude"},
			CoreNeeds:   []string{"being needed", "appreciation", "closeness"},
			Keywords:    []string{"help", "care", "support", "give", "kindness", "others"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You are the one people call at 2 a.m.; your challenge is letting them return the favor.",
				DomainCareer:        "You do your best work in service of someone; impact you can see on a face beats any abstract metric.",
				DomainHealth:        "You guard everyone's wellbeing but your own; your body usually has to shout before you listen.",
				DomainLifestyle:     "Your time belongs to your people first; an empty evening tends to get donated before you notice.",
				DomainPurpose:       "You measure a life in people helped; being needed is not a burden to you, it is the point.",
			},
		},
		{
			ID:          PersonaGuardian,
			DisplayName: "The Guardian",
			TypeLabel:   "Protector",
			Description: "Keeps promises, defends what is theirs and treats reliability as a moral matter.",
			Traits:      []string{"dependable", "loyal", "dutiful", "prudent"},
			CoreValues:  []string{"duty", "loyalty", "security", "tradition"},
			CoreNeeds:   []string{"stability", "trustworthy people", "clear responsibilities"},
			Keywords:    []string{"protect", "duty", "loyal", "responsible", "security", "promise"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You love by being unshakeable; the people in your circle never wonder whether you will show up.",
				DomainCareer:        "You are the person institutions are built on; flashy roles tempt you less than ones where being trusted matters.",
				DomainHealth:        "You treat your health as a responsibility to others; you maintain yourself the way you maintain anything you are in charge of.",
				DomainLifestyle:     "Your life runs on routines that work; you change them reluctantly and only with evidence.",
				DomainPurpose:       "Meaning is keeping your word across decades; you want to be remembered as the one who held.",
			},
		},
		{
			ID:          PersonaHarmonizer,
			DisplayName: "The Harmonizer",
			TypeLabel:   "Mediator",
			Description: "Reads the emotional temperature of every room and works to keep it livable.",
			Traits:      []string{"calm", "diplomatic", "patient", "perceptive"},
			CoreValues:  []string{"peace", "balance", "fairness", "empathy"},
			CoreNeeds:   []string{"low-conflict environments", "time to process", "being heard"},
			Keywords:    []string{"peace", "balance", "calm", "harmony", "listen", "empathy"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You are the quiet center of your relationships; your risk is buying peace with pieces of yourself.",
				DomainCareer:        "You are the colleague who de-escalates; teams work better with you in them, even when nobody can say exactly why.",
				DomainHealth:        "Stress shows up in your body before your mind admits it; stillness practices do more for you than intensity ever will.",
				DomainLifestyle:     "You curate calm deliberately; your home is the place where the volume of the world goes down.",
				DomainPurpose:       "Your meaning is the repair of frayed things; you leave rooms, families and teams gentler than you found them.",
			},
		},
		{
			ID:          PersonaSage,
			DisplayName: "The Sage",
			TypeLabel:   "Thinker",
			Description: "Needs to understand before acting and trusts knowledge more than momentum.",
			Traits:      []string{"analytical", "reflective", "skeptical", "precise"},
			CoreValues:  []string{"truth", "competence", "independence of mind", "depth"},
			CoreNeeds:   []string{"time to think", "intellectual honesty", "problems worth solving"},
			Keywords:    []string{"learn", "understand", "knowledge", "analyze", "think", "why"},
			Templates: map[LifeDomain]string{
				DomainRelationships: "You love through understanding; the gift you give people is being genuinely known, not merely liked.",
				DomainCareer:        "You need problems with depth; work you have fully figured out stops being work and starts being noise.",
				DomainHealth:        "You research before you commit; once you understand the mechanism, your consistency is exceptional.",
				DomainLifestyle:     "Your ideal evening involves a closed door and an open book; you ration social time like the finite resource it is for you.",
				DomainPurpose:       "Meaning is getting closer to true; you keep pulling threads because an unexamined life genuinely does not interest you.",
			},
		},
	})
}
