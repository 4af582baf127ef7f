package components

import (
	"github.com/automoto/pocalucha/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.Animator
}

var Animation = donburi.NewComponentType[AnimationData]()
