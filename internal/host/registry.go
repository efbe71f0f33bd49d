package host

// github-style layout shared by GitHub and GitLab.
var githubLayout = Profile{
	Root:         Template{Path: ""},
	RootAtRef:    Template{Path: "/tree/{ref}"},
	Directory:    Template{Path: "/tree/{ref}/{path}"},
	File:         Template{Path: "/blob/{ref}/{path}"},
	Commit:       Template{Path: "/commit/{sha}"},
	CommitLog:    Template{Path: "/commits/{ref}"},
	CommitLogTag: Template{Path: "/commits/{ref}"},
	Raw:          Template{Path: "/raw/{ref}/{path}"},
	Blame:        Template{Path: "/blame/{ref}/{path}"},
	LineFormat:   "#L%d",
	Features:     AllFeatures,
}

var (
	stashProfile = Profile{
		Kind:         Stash,
		Root:         Template{Path: "/browse", RefQuery: true},
		RootAtRef:    Template{Path: "/browse", RefQuery: true},
		Directory:    Template{Path: "/browse/{path}", RefQuery: true},
		File:         Template{Path: "/browse/{path}", RefQuery: true},
		Commit:       Template{Path: "/commits/{sha}", RefQuery: true},
		CommitLog:    Template{Path: "/commits", RefQuery: true},
		CommitLogTag: Template{Path: "/commits", RefQuery: true},
		Raw:          Template{Path: "/browse/{path}", RefQuery: true, Flag: "raw"},
		LineFormat:   "#%d",
		Features:     FeatureLine | FeatureRaw | FeatureCommits,
	}

	githubProfile = withKind(githubLayout, GitHub)
	gitlabProfile = withKind(githubLayout, GitLab)

	gitoriousProfile = Profile{
		Kind:         Gitorious,
		Root:         Template{Path: ""},
		RootAtRef:    Template{Path: "/source/{ref}"},
		Directory:    Template{Path: "/source/{ref}:{path}"},
		File:         Template{Path: "/source/{ref}:{path}"},
		Commit:       Template{Path: "/commit/{sha}"},
		CommitLog:    Template{Path: "/commits/{ref}"},
		CommitLogTag: Template{Path: "/commits/{ref}"},
		Raw:          Template{Path: "/raw/{ref}:{path}"},
		Blame:        Template{Path: "/blame/{ref}:{path}"},
		LineFormat:   "#L%d",
		Features:     AllFeatures,
	}

	bitbucketProfile = Profile{
		Kind:         Bitbucket,
		Root:         Template{Path: "/src"},
		RootAtRef:    Template{Path: "/src/{ref}/", RefQuery: true},
		Directory:    Template{Path: "/src/{ref}/{path}", RefQuery: true},
		File:         Template{Path: "/src/{ref}/{path}", RefQuery: true},
		Commit:       Template{Path: "/commits/{sha}", RefQuery: true},
		CommitLog:    Template{Path: "/commits/branch/{ref}"},
		CommitLogTag: Template{Path: "/commits/tag/{ref}"},
		Raw:          Template{Path: "/raw/{ref}/{path}", RefQuery: true},
		Blame:        Template{Path: "/annotate/{ref}/{path}", RefQuery: true},
		LineFormat:   "#cl-%d",
		Features:     AllFeatures,
	}
)

func withKind(p Profile, k Kind) Profile {
	p.Kind = k
	return p
}

// Lookup returns the profile for k. The second result is false for kinds
// outside [Kinds].
func Lookup(k Kind) (Profile, bool) {
	switch k {
	case Stash:
		return stashProfile, true
	case GitHub:
		return githubProfile, true
	case GitLab:
		return gitlabProfile, true
	case Gitorious:
		return gitoriousProfile, true
	case Bitbucket:
		return bitbucketProfile, true
	}
	return Profile{}, false
}
